package catalog

// Upgrade is a team-wide research unlock, owned once queued to completion
// via the HQ-only researchUpgrade action (§4.3).
type Upgrade string

const (
	UpgradeVision      Upgrade = "VISION"
	UpgradeFusion      Upgrade = "FUSION"
	UpgradePickaxe     Upgrade = "PICKAXE"
	UpgradeRegen       Upgrade = "REGEN"
)

// UpgradeSpec describes a researchable upgrade's cost and duration.
type UpgradeSpec struct {
	Upgrade   Upgrade
	PartCost  float64
	NumRounds int
}

// Upgrades enumerates every researchable upgrade and its cost/duration.
var Upgrades = map[Upgrade]UpgradeSpec{
	UpgradeVision:  {Upgrade: UpgradeVision, PartCost: 300, NumRounds: 200},
	UpgradeFusion:  {Upgrade: UpgradeFusion, PartCost: 500, NumRounds: 300},
	UpgradePickaxe: {Upgrade: UpgradePickaxe, PartCost: 400, NumRounds: 250},
	UpgradeRegen:   {Upgrade: UpgradeRegen, PartCost: 400, NumRounds: 250},
}

// CommanderSkillType names a skill a COMMANDER may learn through XP.
type CommanderSkillType string

const (
	SkillFlash    CommanderSkillType = "FLASH"
	SkillLeadership CommanderSkillType = "LEADERSHIP"
	SkillRegeneration CommanderSkillType = "REGENERATION"
	SkillHeavyHands   CommanderSkillType = "HEAVY_HANDS"
)
