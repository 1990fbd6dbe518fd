package baseline

import (
	"testing"

	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	assert.Equal(t, []int{8, 9, 10, 11, 12, 14, 16, 18, 20, 22, 24, 26, 28, 32, 36, 40, 48, 72}, Sizes())
}

func TestOffsetsCoverInventory(t *testing.T) {
	for _, size := range Sizes() {
		table, ok := Lookup(size)
		require.True(t, ok)
		for r := range table.Offsets {
			assert.True(t, glyph.Default.Contains(r), "size %d lists %q outside the inventory", size, r)
		}
		assert.Len(t, Offsets(size, glyph.Default), glyph.Default.Len())
	}
}

func TestOffsetSize8(t *testing.T) {
	assert.Equal(t, 4, Offset(8, '\''))
	assert.Equal(t, 2, Offset(8, 'g'))
	assert.Equal(t, 1, Offset(8, '|'))
	assert.Equal(t, -1, Offset(8, '<'))
	assert.Equal(t, 0, Offset(8, 'A'))
}

func TestOffsetSize14AppliesShift(t *testing.T) {
	assert.Equal(t, 3, Offset(14, 'g'))
	assert.Equal(t, 2, Offset(14, ','))
	assert.Equal(t, 1, Offset(14, ':'))
	assert.Equal(t, -3, Offset(14, '='))
	assert.Equal(t, -1, Offset(14, 'A'))
}

func TestOffsetSize16AngleBrackets(t *testing.T) {
	assert.Equal(t, -6, Offset(16, '<'))
	assert.Equal(t, -6, Offset(16, '>'))
	assert.Equal(t, -6, Offset(16, '+'))
	assert.Equal(t, 2, Offset(16, '"'))
}

func TestOffsetSize72(t *testing.T) {
	assert.Equal(t, 2, Offset(72, '"'))
	assert.Equal(t, 1, Offset(72, 'g'))
	assert.Equal(t, 0, Offset(72, 'p'))
	assert.Equal(t, -17, Offset(72, 'C'))
	assert.Equal(t, -18, Offset(72, 'J'))
	assert.Equal(t, -27, Offset(72, '+'))
	assert.Equal(t, -19, Offset(72, 'a'))
}

func TestOffsetUnlistedSize(t *testing.T) {
	assert.False(t, Has(13))
	assert.Equal(t, 0, Offset(13, 'g'))
	for _, v := range Offsets(13, glyph.Default) {
		assert.Zero(t, v)
	}
}

func TestOffsetsDeterministic(t *testing.T) {
	for _, size := range Sizes() {
		assert.Equal(t, Offsets(size, glyph.Default), Offsets(size, glyph.Default))
	}
}

func TestOffsetsFollowInventoryOrder(t *testing.T) {
	inv := glyph.NewInventory("gA'")

	assert.Equal(t, []int{0, -4, 2}, Offsets(16, inv))
}
