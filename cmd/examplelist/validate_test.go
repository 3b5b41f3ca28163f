package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	index := NewExampleIndex()
	index.Set("widgets/btn/lv_example_btn_1", "Simple Buttons")
	index.Set("widgets/btnmatrix/lv_example_btnmatrix_1", "Simple Button matrix")
	index.Set("widgets/calendar/lv_example_calendar_1", "Calendar with header")
	index.Set("anim/lv_example_anim_1", "Start animation")
	result := ScanResult{
		Index:      index,
		Duplicates: []Duplicate{{ID: "widgets/btn/lv_example_btn_1", File: "widgets/btn/index.rst"}},
	}
	sections := []Section{
		{Key: "anim", Label: "Animations"},
		{Key: "scroll", Label: "Scrolling"},
		{Key: "widgets", Label: "Widgets", Subsections: []Category{
			{Key: "btn", Label: "Button"},
			{Key: "btnmatrixcalendar", Label: "Calendar"},
		}},
	}

	issues := validate(sections, result)
	assert.Equal(t, []string{
		"section scroll matches no examples",
		"category widgets/btnmatrixcalendar matches no examples",
		"example widgets/btnmatrix/lv_example_btnmatrix_1 is not listed under any category",
		"example widgets/calendar/lv_example_calendar_1 is not listed under any category",
		"example widgets/btn/lv_example_btn_1 redefined in widgets/btn/index.rst",
	}, issues)
}

func TestValidate_DefaultTablesFlagFusedKey(t *testing.T) {
	index := NewExampleIndex()
	index.Set("widgets/calendar/lv_example_calendar_1", "Calendar with header")
	issues := validate(defaultSections, ScanResult{Index: index})
	assert.Contains(t, issues, "category widgets/btnmatrixcalendar matches no examples")
	assert.Contains(t, issues, "example widgets/calendar/lv_example_calendar_1 is not listed under any category")
}
