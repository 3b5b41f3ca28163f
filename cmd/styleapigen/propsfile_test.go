package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProps(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Prop
		wantErr string
	}{
		{
			name:  "comments and normalization",
			input: `# name,kind,ctype
RADIUS,num,lv_coord_t

bg_color, color, lv_color_t
TEXT_FONT,ptr,const   lv_font_t *
TRANSFORM_ZOOM2,num,lv_coord_t
`,
			want: []Prop{
				{Name: "RADIUS", Kind: KindNum, VarType: "lv_coord_t"},
				{Name: "BG_COLOR", Kind: KindColor, VarType: "lv_color_t"},
				{Name: "TEXT_FONT", Kind: KindPtr, VarType: "const lv_font_t *"},
				{Name: "TRANSFORM_ZOOM2", Kind: KindNum, VarType: "lv_coord_t"},
			},
		},
		{
			name:    "unknown kind",
			input:   "RADIUS,int,lv_coord_t\n",
			wantErr: "unknown storage kind 'int'",
		},
		{
			name:    "duplicate",
			input:   "OPA,num,lv_opa_t\nOPA,num,lv_opa_t\n",
			wantErr: "already defined on line 1",
		},
		{
			name:    "wrong field count",
			input:   "OPA,num\n",
			wantErr: "CSV read error",
		},
		{
			name:    "empty type",
			input:   "OPA,num,\n",
			wantErr: "empty C type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readProps(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProps_MissingFile(t *testing.T) {
	_, err := parseProps(filepath.Join(t.TempDir(), "props.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
