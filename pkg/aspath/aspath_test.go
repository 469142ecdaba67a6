package aspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemovePrepending(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1 2 3", RemovePrepending("1 2 2 2 3"))
	assert.Equal("1 2 1", RemovePrepending("1 2 1"))
	assert.Equal("65001 65002", RemovePrepending("65001 65001 65002 65002 65002"))
	assert.Equal("A C A C", RemovePrepending("A C A C"))
	assert.Equal("64500", RemovePrepending("64500"))
	assert.Equal("", RemovePrepending(""))
}

func TestRemovePrependingIdempotent(t *testing.T) {
	for _, p := range []string{
		"",
		"1",
		"1 1 1 1",
		"1 2 2 2 3",
		"1 2 1 1 2",
		"3130 1239 1239 1239 15169 15169",
		"1  2",
	} {
		once := RemovePrepending(p)
		assert.Equal(t, once, RemovePrepending(once), p)
		assert.False(t, HasPrepending(once) && once != "", p)
	}
}

func TestHasPrepending(t *testing.T) {
	assert.True(t, HasPrepending("1 2 2 3"))
	assert.False(t, HasPrepending("1 2 1"))
	assert.False(t, HasPrepending("1"))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "15169", Origin("3130 1239 15169"))
	assert.Equal(t, "15169", Origin("15169"))
	assert.Equal(t, "", Origin(""))
}

func TestFindDivergencePoint(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(NoDivergence, FindDivergencePoint("1 2 3", "1 2 3"))
	// reversed: "3 2 1" against "4 2 1"
	assert.Equal(0, FindDivergencePoint("1 2 3", "1 2 4"))
	assert.Equal(0, FindDivergencePoint("9 8 1", "9 8 2"))
	assert.Equal(2, FindDivergencePoint("9 8 1", "7 8 1"))
	assert.Equal(1, FindDivergencePoint("5 9 1", "5 8 1"))

	// origin-aligned prefix of different length is not a divergence
	assert.Equal(NoDivergence, FindDivergencePoint("2 3", "1 2 3"))
	assert.Equal(NoDivergence, FindDivergencePoint("3", "7 6 5 3"))
	assert.Equal(NoDivergence, FindDivergencePoint("", ""))
	assert.Equal(0, FindDivergencePoint("", "1"))
}

func TestFindDivergencePointSymmetric(t *testing.T) {
	paths := []string{"1 2 3", "1 2 4", "9 8 1", "7 8 1", "2 3", "3", "", "3130 1239 15169", "3130 174 15169"}
	for _, a := range paths {
		for _, b := range paths {
			assert.Equal(t, FindDivergencePoint(a, b), FindDivergencePoint(b, a), "%q %q", a, b)
		}
	}
}

func TestFindDivergencePointAfterRemovePrepending(t *testing.T) {
	p1 := "3130 1239 15169 15169 15169"
	p2 := "2914 1239 15169"
	assert.Equal(t, 1, FindDivergencePoint(p1, p2))
	assert.Equal(t, 2, FindDivergencePoint(RemovePrepending(p1), p2))
}
