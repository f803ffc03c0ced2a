// Package speed provides Speed, a derived quantity pairing a length unit
// with a time unit.
//
//	a := speed.Of[length.M, chrono.Second](7.4)          // 7.4 m/s
//	b := speed.Per[chrono.Hour](length.Of[length.Mi](55)) // 55 mi/h
//	c := speed.To[length.Km, chrono.Hour](b)             // 88.51392000000001 km/h
//
// Both unit parameters must match for Add, Sub and comparison; each axis
// is checked independently.
package speed
