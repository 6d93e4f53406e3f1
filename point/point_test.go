package point

import (
	"testing"

	"github.com/cgshop2023/verifier/exactnum"
	"github.com/stretchr/testify/assert"
)

func num(s string) exactnum.Number {
	n, err := exactnum.Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func TestEq(t *testing.T) {
	a := New(num("1/2"), num("0.5"))
	b := New(num("0.5"), num("1/2"))
	assert.True(t, a.Eq(b))

	c := New(num("1/2"), num("1/3"))
	assert.False(t, a.Eq(c))
}

func TestCross(t *testing.T) {
	a := New(num("1"), num("0"))
	b := New(num("0"), num("1"))
	assert.Equal(t, "1", a.Cross(b).RatString())
	assert.Equal(t, "-1", b.Cross(a).RatString())
}

func TestLess(t *testing.T) {
	a := New(num("0"), num("5"))
	b := New(num("1"), num("0"))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSubAdd(t *testing.T) {
	a := New(num("3"), num("4"))
	b := New(num("1"), num("1"))
	diff := a.Sub(b)
	assert.Equal(t, "2", diff.X().RatString())
	assert.Equal(t, "3", diff.Y().RatString())

	sum := diff.Add(b)
	assert.True(t, sum.Eq(a))
}
