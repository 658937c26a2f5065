// Copyright 2026 The editscript Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editscript

// AnchorMode selects which anchors the global anchor search keeps.
type AnchorMode int

const (
	// AnchorModeCombo keeps positional and floating anchors.
	AnchorModeCombo AnchorMode = iota
	// AnchorModePositional keeps anchors whose drift is at most
	// [Config.PositionalAnchorMaxDrift].
	AnchorModePositional
	// AnchorModeFloating keeps anchors whose drift exceeds
	// [Config.PositionalAnchorMaxDrift].
	AnchorModeFloating
)

// Config collects all configurable parameters of a diff. A Config is
// resolved once per [Engine.Diff] call by merging options over the defaults
// and is immutable for the duration of the call. Strategies receive the
// resolved Config; sizes are in tokens unless noted.
type Config struct {
	// Strategy names the strategy plugin to invoke.
	Strategy string

	// MinMatchLength is the minimum anchor length.
	MinMatchLength int

	// QuickDiffThreshold is the combined gap size below which a gap is
	// solved by the precise trace-based Myers search.
	QuickDiffThreshold int

	// HugeDiffThreshold is the combined gap size above which a gap falls
	// through to the corridor heuristic.
	HugeDiffThreshold int

	// Lookahead bounds the corridor heuristic's forward scan for companion
	// symbols.
	Lookahead int

	// CorridorWidth bounds the corridor heuristic's deviation from the
	// starting diagonal.
	CorridorWidth int

	// SkipTrimming suppresses common prefix/suffix trimming.
	SkipTrimming bool

	// JumpStep is the scan stride when hashing the old sequence during
	// anchor search.
	JumpStep int

	// HuntChunkSize is the rolling-hash window size.
	HuntChunkSize int

	// MinAnchorConfidence is the lower bound on final anchor confidence;
	// the comparison is non-strict.
	MinAnchorConfidence float64

	// UseAnchors toggles the global anchor search.
	UseAnchors bool

	// LocalLookahead is the strategy-level search distance for local
	// positional anchors.
	LocalLookahead int

	// AnchorSearchMode filters anchors by drift.
	AnchorSearchMode AnchorMode

	// PositionalAnchorMaxDrift is the drift threshold separating positional
	// from floating anchors.
	PositionalAnchorMaxDrift int
}

// defaults returns the default configuration.
func defaults() Config {
	return Config{
		Strategy:                 StrategyCommonSES,
		MinMatchLength:           30,
		QuickDiffThreshold:       64,
		HugeDiffThreshold:        256,
		Lookahead:                10,
		CorridorWidth:            10,
		SkipTrimming:             false,
		JumpStep:                 30,
		HuntChunkSize:            10,
		MinAnchorConfidence:      0.8,
		UseAnchors:               true,
		LocalLookahead:           50,
		AnchorSearchMode:         AnchorModeCombo,
		PositionalAnchorMaxDrift: 20,
	}
}

// Option configures a single [Engine.Diff] call.
type Option func(*Config)

// resolve merges opts over the defaults.
func resolve(opts []Option) Config {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Strategy selects the strategy plugin to invoke. The default is
// [StrategyCommonSES].
func Strategy(name string) Option {
	return func(cfg *Config) { cfg.Strategy = name }
}

// MinMatchLength sets the minimum anchor length. The default is 30.
func MinMatchLength(n int) Option {
	return func(cfg *Config) { cfg.MinMatchLength = n }
}

// QuickDiffThreshold sets the combined gap size below which a gap is solved
// by the precise Myers search. The default is 64.
func QuickDiffThreshold(n int) Option {
	return func(cfg *Config) { cfg.QuickDiffThreshold = n }
}

// HugeDiffThreshold sets the combined gap size above which a gap falls
// through to the corridor heuristic. The default is 256.
func HugeDiffThreshold(n int) Option {
	return func(cfg *Config) { cfg.HugeDiffThreshold = n }
}

// Lookahead sets the corridor heuristic's maximum forward scan for
// companion symbols. The default is 10.
func Lookahead(n int) Option {
	return func(cfg *Config) { cfg.Lookahead = n }
}

// CorridorWidth sets the maximum deviation from the starting diagonal in
// the corridor heuristic. The default is 10.
func CorridorWidth(n int) Option {
	return func(cfg *Config) { cfg.CorridorWidth = n }
}

// SkipTrimming suppresses common prefix/suffix trimming.
func SkipTrimming() Option {
	return func(cfg *Config) { cfg.SkipTrimming = true }
}

// JumpStep sets the scan stride when hashing the old sequence during anchor
// search. The default is 30.
func JumpStep(n int) Option {
	return func(cfg *Config) { cfg.JumpStep = n }
}

// HuntChunkSize sets the rolling-hash window size. The default is 10.
func HuntChunkSize(n int) Option {
	return func(cfg *Config) { cfg.HuntChunkSize = n }
}

// MinAnchorConfidence sets the lower bound on final anchor confidence. The
// default is 0.8.
func MinAnchorConfidence(v float64) Option {
	return func(cfg *Config) { cfg.MinAnchorConfidence = v }
}

// UseAnchors toggles the global anchor search. The default is true.
func UseAnchors(enabled bool) Option {
	return func(cfg *Config) { cfg.UseAnchors = enabled }
}

// LocalLookahead sets the strategy-level search distance for local
// positional anchors. The default is 50.
func LocalLookahead(n int) Option {
	return func(cfg *Config) { cfg.LocalLookahead = n }
}

// AnchorSearchMode selects which anchors the global anchor search keeps.
// The default is [AnchorModeCombo].
func AnchorSearchMode(m AnchorMode) Option {
	return func(cfg *Config) { cfg.AnchorSearchMode = m }
}

// PositionalAnchorMaxDrift sets the drift threshold separating positional
// from floating anchors. The default is 20.
func PositionalAnchorMaxDrift(n int) Option {
	return func(cfg *Config) { cfg.PositionalAnchorMaxDrift = n }
}
