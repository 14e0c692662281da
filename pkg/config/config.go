// Package config loads the policy, scanner, and logging settings that
// parameterize a safedoc run, following the teacher's
// embed-defaults-then-overlay-a-file shape, but loaded through viper
// instead of a bare yaml.Unmarshal so environment-variable overrides come
// for free; an override file is always parsed as YAML. gopkg.in/yaml.v3
// (the teacher's own config-marshaling library) is used directly for the
// reverse direction: Config.YAML serializes the merged, effective Config
// back out.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gov-df/safedoc/pkg/policy"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// Config is the on-disk/env-overridable shape of a safedoc run.
type Config struct {
	Version string        `mapstructure:"version" yaml:"version"`
	Policy  PolicyConfig  `mapstructure:"policy" yaml:"policy"`
	Scanner ScannerConfig `mapstructure:"scanner" yaml:"scanner"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// PolicyConfig mirrors policy.Policy in a serializable shape.
type PolicyConfig struct {
	ScoreBlock                      int  `mapstructure:"score_block" yaml:"score_block"`
	ScoreReview                     int  `mapstructure:"score_review" yaml:"score_review"`
	BlockIfCPFCNPJValid             bool `mapstructure:"block_if_cpf_cnpj_valid" yaml:"block_if_cpf_cnpj_valid"`
	BlockIfEmailPresent             bool `mapstructure:"block_if_email_present" yaml:"block_if_email_present"`
	BlockIfPhoneValid               bool `mapstructure:"block_if_phone_valid" yaml:"block_if_phone_valid"`
	BlockIfProcessoPresente         bool `mapstructure:"block_if_processo_presente" yaml:"block_if_processo_presente"`
	ReviewIfPhoneSuspectWithContext bool `mapstructure:"review_if_phone_suspect_with_context" yaml:"review_if_phone_suspect_with_context"`
	ReviewIfHardSuspectWithContext  bool `mapstructure:"review_if_hard_suspect_with_context" yaml:"review_if_hard_suspect_with_context"`
}

// ToPolicy converts the loaded config into the immutable policy.Policy the
// engine actually consumes.
func (p PolicyConfig) ToPolicy() policy.Policy {
	return policy.Policy{
		ScoreBlock:                  p.ScoreBlock,
		ScoreReview:                 p.ScoreReview,
		BlockIfCPFCNPJValid:         p.BlockIfCPFCNPJValid,
		BlockIfEmailPresent:         p.BlockIfEmailPresent,
		BlockIfPhoneValid:           p.BlockIfPhoneValid,
		BlockIfProcessoPresente:     p.BlockIfProcessoPresente,
		ReviewIfPhoneSuspectWithCtx: p.ReviewIfPhoneSuspectWithContext,
		ReviewIfHardSuspectWithCtx:  p.ReviewIfHardSuspectWithContext,
	}
}

// ScannerConfig controls the batch adapter, not the rule catalog (which is
// static — see pkg/rules).
type ScannerConfig struct {
	Workers      int  `mapstructure:"workers" yaml:"workers"`
	BatchMemoize bool `mapstructure:"batch_memoize" yaml:"batch_memoize"`
}

// LoggingConfig controls pkg/obs's root logger construction.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

// YAML serializes the effective configuration (embedded defaults merged
// with any file/env overrides already applied by Load) back to YAML, in a
// shape Load accepts as an override file.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// Load builds a viper instance seeded with the embedded defaults, then
// merges in path (if non-empty) and SAFEDOC_-prefixed environment
// variables, in that precedence order (env wins, then file, then
// defaults).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("config: parse embedded defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("safedoc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration built from the embedded defaults
// alone, equivalent to Load("").
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded default document is a build-time constant; a
		// failure here means it was edited into invalid yaml.
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}
