package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Kind selects the lv_style_value_t union field a property value is stored in.
type Kind string

const (
	KindNum   Kind = "num"
	KindFunc  Kind = "func"
	KindPtr   Kind = "ptr"
	KindColor Kind = "color"
)

var kinds = []Kind{KindNum, KindFunc, KindPtr, KindColor}

// ParseKind converts the textual storage kind used in property files.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown storage kind '%s'", s)
}

// Prop describes one style property. The kind and C type are trusted as given; a mismatch
// between them is not detected here.
type Prop struct {
	Name    string
	Kind    Kind
	VarType string
}

// normalizePropName turns names read from files into the SCREAMING_SNAKE form of the table.
// Names already in upper case are kept verbatim, so digits stay attached: PAD_2X, not PAD_2_X.
func normalizePropName(name string) string {
	name = strings.TrimSpace(name)
	if strings.IndexFunc(name, unicode.IsLower) < 0 {
		return name
	}
	return strcase.ToScreamingSnake(name)
}

// defaultProps is the built-in property table. Order determines output order.
var defaultProps = []Prop{
	{Name: "RADIUS", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "CLIP_CORNER", Kind: KindNum, VarType: "bool"},
	{Name: "TRANSFORM_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "TRANSFORM_HEIGHT", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "TRANSFORM_ZOOM", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "TRANSFORM_ANGLE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "COLOR_FILTER_CB", Kind: KindFunc, VarType: "lv_color_filter_cb_t"},
	{Name: "COLOR_FILTER_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "ANIM_TIME", Kind: KindNum, VarType: "uint32_t"},
	{Name: "TRANSITION", Kind: KindPtr, VarType: "const lv_style_transition_t *"},
	{Name: "SIZE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "BLEND_MODE", Kind: KindNum, VarType: "lv_blend_mode_t"},
	{Name: "PAD_TOP", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "PAD_BOTTOM", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "PAD_LEFT", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "PAD_RIGHT", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "PAD_ROW", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "PAD_COLUMN", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "BG_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "BG_GRAD_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_GRAD_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_GRAD_DIR", Kind: KindNum, VarType: "lv_grad_dir_t"},
	{Name: "BG_MAIN_STOP", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "BG_GRAD_STOP", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "BG_IMG_SRC", Kind: KindPtr, VarType: "const void *"},
	{Name: "BG_IMG_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "BG_IMG_RECOLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_IMG_RECOLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BG_IMG_RECOLOR_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "BG_IMG_TILED", Kind: KindNum, VarType: "bool"},
	{Name: "BORDER_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BORDER_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "BORDER_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "BORDER_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "BORDER_SIDE", Kind: KindNum, VarType: "lv_border_side_t"},
	{Name: "BORDER_POST", Kind: KindNum, VarType: "bool"},
	{Name: "TEXT_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "TEXT_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "TEXT_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "TEXT_FONT", Kind: KindPtr, VarType: "const lv_font_t *"},
	{Name: "TEXT_LETTER_SPACE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "TEXT_LINE_SPACE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "TEXT_DECOR", Kind: KindNum, VarType: "lv_text_decor_t"},
	{Name: "TEXT_ALIGN", Kind: KindNum, VarType: "lv_text_align_t"},
	{Name: "IMG_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "IMG_RECOLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "IMG_RECOLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "IMG_RECOLOR_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "OUTLINE_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "OUTLINE_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "OUTLINE_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "OUTLINE_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "OUTLINE_PAD", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "SHADOW_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "SHADOW_OFS_X", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "SHADOW_OFS_Y", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "SHADOW_SPREAD", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "SHADOW_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "SHADOW_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "SHADOW_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "LINE_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "LINE_DASH_WIDTH", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "LINE_DASH_GAP", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "LINE_ROUNDED", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "LINE_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "LINE_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "LINE_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "CONTENT_TEXT", Kind: KindPtr, VarType: "const char *"},
	{Name: "CONTENT_ALIGN", Kind: KindNum, VarType: "lv_align_t"},
	{Name: "CONTENT_OFS_X", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "CONTENT_OFS_Y", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "CONTENT_OPA", Kind: KindNum, VarType: "lv_opa_t"},
	{Name: "CONTENT_FONT", Kind: KindPtr, VarType: "const lv_font_t *"},
	{Name: "CONTENT_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "CONTENT_COLOR_FILTERED", Kind: KindColor, VarType: "lv_color_t"},
	{Name: "CONTENT_LETTER_SPACE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "CONTENT_LINE_SPACE", Kind: KindNum, VarType: "lv_coord_t"},
	{Name: "CONTENT_DECOR", Kind: KindNum, VarType: "lv_text_decor_t"},
}
