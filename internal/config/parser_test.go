package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/popper/internal/popper"
	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `overlay:
  placement: bottom-start
  offset: {x: 2, y: 1}
  width: match-anchor
  z_index: 50
  close_on_escape: false
logging:
  level: debug
demo:
  anchor_label: "File"
  items: ["New", "Open"]
`

	invalidYAML := `overlay:
  placement: [top, bottom]
`

	badPlacement := `overlay:
  placement: sideways
`

	badWidth := `overlay:
  width: 12px
`

	negativeZ := `overlay:
  z_index: -1
`

	emptyItems := `demo:
  items: []
`

	duplicateItems := `demo:
  items: ["Open", "open"]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed over defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "bottom-start", cfg.Overlay.Placement)
				require.Equal(t, popper.Offset{X: 2, Y: 1}, cfg.Overlay.Offset)
				require.Equal(t, "match-anchor", cfg.Overlay.Width)
				require.Equal(t, 50, cfg.Overlay.ZIndex)
				require.False(t, cfg.Overlay.CloseOnEscape)
				require.True(t, cfg.Overlay.CloseOnOutsideClick)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.True(t, cfg.Logging.Human)
				require.Equal(t, []string{"New", "Open"}, cfg.Demo.Items)
				require.Equal(t, 60, cfg.Demo.FrameRate)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *popperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown placement is rejected",
			contents: badPlacement,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *popperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "overlay.placement", validationErr.Field)
				require.Contains(t, validationErr.Message, "'placement'")
			},
		},
		{
			name:     "unknown width mode is rejected",
			contents: badWidth,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *popperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "overlay.width", validationErr.Field)
			},
		},
		{
			name:     "negative z-index is rejected",
			contents: negativeZ,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *popperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "overlay.z_index", validationErr.Field)
				require.Contains(t, validationErr.Message, "min=0")
			},
		},
		{
			name:     "menu needs items",
			contents: emptyItems,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *popperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "demo.items", validationErr.Field)
			},
		},
		{
			name:     "menu items must be unique",
			contents: duplicateItems,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *popperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "demo.items[1]", validationErr.Field)
				require.Contains(t, validationErr.Message, "duplicate")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *popperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *popperrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestPopperOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	opts := cfg.PopperOptions()
	require.Equal(t, popper.PlacementBottom, opts.Placement)
	require.Equal(t, popper.DefaultOffset, *opts.Offset)
	require.Equal(t, popper.WidthAuto, opts.WidthMode)
	require.Equal(t, popper.DefaultZIndex, opts.ZIndex)
	require.Equal(t, popper.DismissOptions{}, opts.Dismiss)

	cfg.Overlay.Placement = "left-end"
	cfg.Overlay.Width = "max-content"
	cfg.Overlay.CloseOnOutsideClick = false
	cfg.Overlay.Offset = popper.Offset{X: -4}
	opts = cfg.PopperOptions()
	require.Equal(t, popper.PlacementLeftEnd, opts.Placement)
	require.Equal(t, popper.WidthMaxContent, opts.WidthMode)
	require.Equal(t, popper.Offset{X: -4}, *opts.Offset)
	require.True(t, opts.Dismiss.IgnoreOutsidePointer)
	require.False(t, opts.Dismiss.IgnoreEscape)

	var nilCfg *Config
	require.Equal(t, popper.DefaultOptions(), nilCfg.PopperOptions())
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
