// Package watch notifies the generator when a unit table is edited.
//
// Editors rarely write a file in place: many save to a temporary file and
// rename it over the original, which drops a watch held on the file
// itself. The watcher therefore watches the table's directory and filters
// events by file name.
package watch
