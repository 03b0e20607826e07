package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// Dimensions is the target size of an asset in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OutputSpec describes the encoding an asset should be delivered in.
type OutputSpec struct {
	Format     string     `json:"format,omitempty"`
	SizeTarget SizeTarget `json:"sizeTarget,omitempty"`
}

// AssetType is one entry of the assetTypes map.
//
// Format and SizeTarget at the top level are the older config layout; newer
// configs put them under Output. Use EffectiveOutput to read either.
type AssetType struct {
	Filename       string      `json:"filename"`
	Dimensions     Dimensions  `json:"dimensions"`
	PostProcessing []string    `json:"postProcessing,omitempty"`
	Output         *OutputSpec `json:"output,omitempty"`
	Format         string      `json:"format,omitempty"`
	SizeTarget     SizeTarget  `json:"sizeTarget,omitempty"`
}

// AssetConfig is the decoded .asset-gen-config.json document.
type AssetConfig struct {
	AssetTypes map[string]AssetType
}

// UnmarshalJSON decodes the assetTypes map, skipping keys that start with an
// underscore. Those hold comments and may not be objects at all.
func (c *AssetConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		AssetTypes map[string]json.RawMessage `json:"assetTypes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.AssetTypes = make(map[string]AssetType, len(raw.AssetTypes))
	for name, msg := range raw.AssetTypes {
		if strings.HasPrefix(name, "_") {
			continue
		}
		var at AssetType
		if err := json.Unmarshal(msg, &at); err != nil {
			return fmt.Errorf("asset type %q: %w", name, err)
		}
		c.AssetTypes[name] = at
	}
	return nil
}

// Names returns the asset type names in sorted order.
func (c *AssetConfig) Names() []string {
	names := make([]string, 0, len(c.AssetTypes))
	for name := range c.AssetTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAssetConfig reads and decodes an asset config file.
func LoadAssetConfig(path string) (*AssetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, apperrors.NewConfigError(fmt.Sprintf("failed to read config: %s", path), err)
	}

	var cfg AssetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewConfigError(fmt.Sprintf("invalid JSON in config: %s", path), err)
	}
	return &cfg, nil
}

// Default output used when there is no config or the asset type is unknown.
const (
	DefaultFormat     = "PNG"
	DefaultSizeTarget = SizeTarget("50KB")
)

// EffectiveOutput resolves the asset type's format and size target, preferring
// the output block over the legacy top-level fields. A nil config or unknown
// asset type yields PNG with a 50KB target.
func (c *AssetConfig) EffectiveOutput(assetType string) OutputSpec {
	outCfg := OutputSpec{Format: DefaultFormat, SizeTarget: DefaultSizeTarget}
	if c == nil {
		return outCfg
	}
	at, ok := c.AssetTypes[assetType]
	if !ok {
		return outCfg
	}

	if at.Output != nil {
		if at.Output.Format != "" {
			outCfg.Format = at.Output.Format
		}
		if at.Output.SizeTarget != "" {
			outCfg.SizeTarget = at.Output.SizeTarget
		}
		return outCfg
	}
	if at.Format != "" {
		outCfg.Format = at.Format
	}
	if at.SizeTarget != "" {
		outCfg.SizeTarget = at.SizeTarget
	}
	return outCfg
}

// SizeTarget is a byte budget written as "150KB", "2MB" or a plain byte count.
// It decodes from either a JSON string or a JSON number.
type SizeTarget string

// UnmarshalJSON accepts both "150KB" and 153600.
func (s *SizeTarget) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SizeTarget(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = SizeTarget(n.String())
	return nil
}

// Bytes parses the target. An empty target returns 0, meaning no budget.
func (s SizeTarget) Bytes() (int64, error) {
	return ParseSizeTarget(string(s))
}

// ParseSizeTarget converts "150KB", "2MB" or "1024" to bytes (1KB = 1024).
func ParseSizeTarget(s string) (int64, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	if str == "" {
		return 0, nil
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(str, "KB"):
		multiplier = 1024
		str = strings.TrimSuffix(str, "KB")
	case strings.HasSuffix(str, "MB"):
		multiplier = 1024 * 1024
		str = strings.TrimSuffix(str, "MB")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	if err != nil || n < 0 {
		return 0, apperrors.InvalidArgumentf("invalid size target: %q", s)
	}
	return n * multiplier, nil
}
