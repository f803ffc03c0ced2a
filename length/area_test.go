package length

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArea_String(t *testing.T) {
	assert.Equal(t, "1 m²", Of[M](1.0).By(M{}).String())
	assert.Equal(t, "18.5 in²", Of[In](18.5).By(In{}).String())
	assert.Equal(t, "1.23 cm²", fmt.Sprintf("%.2f", Of[Cm](1.234).By(Cm{})))
	assert.Equal(t, "1.25 yd²", VolumeOf[Yd](2.5).Per(Of[Yd](2.0)).String())
}

func TestAreaTo(t *testing.T) {
	assert.Equal(t, AreaOf[In](144.00000000000006), AreaTo[In](AreaOf[Ft](1.0)))
	assert.Equal(t, AreaOf[Cm](10_000.0), AreaTo[Cm](AreaOf[M](1.0)))
	assert.Equal(t, AreaOf[Mm](3.0), AreaTo[Mm](AreaOf[Mm](3.0)))
	assert.InEpsilon(t, 2.0, AreaTo[Km](AreaTo[M](AreaOf[Km](2.0))).Value, 1e-12)
}

func TestArea_Add(t *testing.T) {
	assert.Equal(t, Of[Yd](27.0).By(Yd{}), Of[Yd](12.0).By(Yd{}).Add(Of[Yd](15.0).By(Yd{})))
	assert.Equal(t, AreaOf[Km](41.0), AreaOf[Km](25.6).Add(AreaOf[Km](15.4)))
}

func TestArea_Sub(t *testing.T) {
	assert.Equal(t, AreaOf[Mi](2.5), AreaOf[Mi](5.0).Sub(AreaOf[Mi](2.5)))
}

func TestArea_Mul(t *testing.T) {
	assert.Equal(t, AreaOf[Dm](7.5), AreaOf[Dm](3.0).Mul(2.5))
	assert.Equal(t, AreaOf[Dm](12.0), AreaOf[Dm](3.0).Mul(4.0))
	assert.Equal(t, VolumeOf[Mm](246.0), AreaOf[Mm](123.0).Times(Of[Mm](2.0)))
	assert.Equal(t, VolumeOf[Mm](123.0), AreaOf[Mm](123.0).By(Mm{}))
}

func TestArea_Div(t *testing.T) {
	assert.Equal(t, AreaOf[Cm](100.0), AreaOf[Cm](500.0).Div(5.0))
	assert.Equal(t, Of[Nm](4.0), AreaOf[Nm](40.0).Per(Of[Nm](10.0)))
}

func TestArea_DimensionalClosure(t *testing.T) {
	a, b := 3.5, 4.0

	area := Of[M](a).Times(Of[M](b))
	assert.Equal(t, Of[M](a*b).By(M{}), area)
	assert.Equal(t, Of[M](a), area.Per(Of[M](b)))
}

func TestArea_Ordering(t *testing.T) {
	assert.True(t, AreaOf[M](1).Less(AreaOf[M](2)))
	assert.Equal(t, 1, AreaOf[M](3).Compare(AreaOf[M](2)))
}
