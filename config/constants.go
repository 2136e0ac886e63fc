// Package config holds the engine's single block of tunable constants
// (spec.md §6). Every component that needs a tunable takes a *Constants at
// construction instead of reading package globals, so a test can run two
// engines with two different tunings side by side.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Constants is the closed set of tunables named in spec.md §6.
type Constants struct {
	BroadcastMaxChannels int

	BasicSignalsPerTurn   int
	MessageSignalsPerTurn int
	SignalQueueMaxSize    int

	FlashMovementDelay float64

	MiningLoadingDelay  float64
	MiningMovementDelay float64

	SupplyTransferRadiusSquared int64
	NumberOfIndicatorStrings    int

	RubbleClearPercentage float64
	RubbleClearFlatAmount float64
	RubbleObstructionThresh float64
	RubbleFromTurretFactor  float64
	SlowThreshold           float64

	ArchonPartIncome      float64
	PartIncomeUnitPenalty float64
	PartsInitialAmount    float64
	DenPartReward         float64

	GuardDamageReduction float64
	ArchonRepairAmount   float64

	BroadcastBaseDelayIncrease       float64
	BroadcastAdditionalDelayIncrease float64

	FreeBytecodeMargin int64
}

// Defaults returns the engine's baseline tuning, matching the values pinned
// by the literal scenarios in spec.md §8.
func Defaults() *Constants {
	return &Constants{
		BroadcastMaxChannels: 65535,

		BasicSignalsPerTurn:   10,
		MessageSignalsPerTurn: 3,
		SignalQueueMaxSize:    1000,

		FlashMovementDelay: 5,

		MiningLoadingDelay:  2,
		MiningMovementDelay: 2,

		SupplyTransferRadiusSquared: 2,
		NumberOfIndicatorStrings:    3,

		RubbleClearPercentage:   0.05,
		RubbleClearFlatAmount:   5,
		RubbleObstructionThresh: 100,
		RubbleFromTurretFactor:  1.0 / 3.0,
		SlowThreshold:           50,

		ArchonPartIncome:      2,
		PartIncomeUnitPenalty: 0.1,
		PartsInitialAmount:    100,
		DenPartReward:         30,

		GuardDamageReduction: 0.6,
		ArchonRepairAmount:   4,

		BroadcastBaseDelayIncrease:       0.05,
		BroadcastAdditionalDelayIncrease: 0.1,

		FreeBytecodeMargin: 4000,
	}
}

// Load returns the default constants, overridden by an optional config file
// at path (any format viper supports; pass "" to skip) and by environment
// variables prefixed BATTLECORE_ (e.g. BATTLECORE_RUBBLEOBSTRUCTIONTHRESH).
// If a ".env" file is present in the working directory it is loaded first
// (via godotenv) so local test tuning doesn't require exporting shell vars.
func Load(path string) (*Constants, error) {
	_ = godotenv.Load() // optional; absence is not an error

	v := viper.New()
	v.SetEnvPrefix("BATTLECORE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	c := Defaults()
	bind(v, c)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	out := Defaults()
	if err := v.Unmarshal(out); err != nil {
		return nil, err
	}
	return out, nil
}

// bind registers default values with viper so AutomaticEnv lookups and
// Unmarshal both see every field even when no file or env var sets it.
func bind(v *viper.Viper, c *Constants) {
	v.SetDefault("broadcastmaxchannels", c.BroadcastMaxChannels)
	v.SetDefault("basicsignalsperturn", c.BasicSignalsPerTurn)
	v.SetDefault("messagesignalsperturn", c.MessageSignalsPerTurn)
	v.SetDefault("signalqueuemaxsize", c.SignalQueueMaxSize)
	v.SetDefault("flashmovementdelay", c.FlashMovementDelay)
	v.SetDefault("miningloadingdelay", c.MiningLoadingDelay)
	v.SetDefault("miningmovementdelay", c.MiningMovementDelay)
	v.SetDefault("supplytransferradiussquared", c.SupplyTransferRadiusSquared)
	v.SetDefault("numberofindicatorstrings", c.NumberOfIndicatorStrings)
	v.SetDefault("rubbleclearpercentage", c.RubbleClearPercentage)
	v.SetDefault("rubbleclearflatamount", c.RubbleClearFlatAmount)
	v.SetDefault("rubbleobstructionthresh", c.RubbleObstructionThresh)
	v.SetDefault("rubblefromturretfactor", c.RubbleFromTurretFactor)
	v.SetDefault("slowthreshold", c.SlowThreshold)
	v.SetDefault("archonpartincome", c.ArchonPartIncome)
	v.SetDefault("partincomeunitpenalty", c.PartIncomeUnitPenalty)
	v.SetDefault("partsinitialamount", c.PartsInitialAmount)
	v.SetDefault("denpartreward", c.DenPartReward)
	v.SetDefault("guarddamagereduction", c.GuardDamageReduction)
	v.SetDefault("archonrepairamount", c.ArchonRepairAmount)
	v.SetDefault("broadcastbasedelayincrease", c.BroadcastBaseDelayIncrease)
	v.SetDefault("broadcastadditionaldelayincrease", c.BroadcastAdditionalDelayIncrease)
	v.SetDefault("freebytecodemargin", c.FreeBytecodeMargin)
}
