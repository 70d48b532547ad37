package shaping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeRTLLeavesLatinAlone(t *testing.T) {
	for _, s := range []string{"", "FastAPI GPU-ready inference server", "Größe 42 – ok"} {
		assert.Equal(t, s, ShapeRTL(s))
	}
}

func TestShapeArabicContextualForms(t *testing.T) {
	// beh beh: initial + final
	assert.Equal(t, "ﺑﺐ", shapeArabic([]rune("بب")))
	// beh beh beh: initial + medial + final
	assert.Equal(t, "ﺑﺒﺐ", shapeArabic([]rune("ببب")))
	// alef does not join forward: dal after alef stays isolated
	assert.Equal(t, "ﺍﺩ", shapeArabic([]rune("اد")))
	// hamza never joins
	assert.Equal(t, "ﺑﺐﺀ", shapeArabic([]rune("ببء")))
}

func TestShapeArabicLamAlef(t *testing.T) {
	assert.Equal(t, "ﻻ", shapeArabic([]rune("لا")))
	// beh + lam-alef: ligature takes its final form
	assert.Equal(t, "ﺑﻼ", shapeArabic([]rune("بلا")))
}

func TestShapeArabicSkipsMarks(t *testing.T) {
	// beh + fatha + beh still joins across the mark
	assert.Equal(t, "ﺑَﺐ", shapeArabic([]rune("بَب")))
}

func TestShapeRTLReordersArabic(t *testing.T) {
	assert.Equal(t, "ﺐﺑ", ShapeRTL("بب"))
	assert.Equal(t, "ﺐﺑ ﺎﺑ", ShapeRTL("با بب"))
}
