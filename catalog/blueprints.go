package catalog

// RobotTypes enumerates baseline stats for every robot type the engine
// knows about. Numbers are conservative baselines in the spirit of the
// scenarios pinned by spec.md §8 (e.g. ARCHON.MaxHealth=1000,
// SOLDIER.AttackPower=4); tune freely via a copy of this table if a match
// needs different balance, the engine itself never hardcodes a stat.
var RobotTypes = map[RobotType]RobotTypeData{
	Archon: {
		Type:                Archon,
		MaxHealth:           1000,
		AttackPower:         0,
		AttackDelay:         0,
		CooldownDelay:       0,
		MovementDelay:       2,
		SensorRadiusSquared: 34,
		AttackRadiusSquared: 0,
		BytecodeLimit:       10000,
		Flags:               Flags{CanMove: true, CanSpawn: true, CanResearch: true},
	},
	Beaver: {
		Type:                Beaver,
		MaxHealth:           50,
		AttackPower:         0,
		MovementDelay:       2,
		SensorRadiusSquared: 24,
		BytecodeLimit:       10000,
		PartCost:            50,
		BuildTurns:          1,
		Flags:               Flags{CanMove: true, CanBuild: true, CanMine: true},
	},
	Soldier: {
		Type:                Soldier,
		MaxHealth:           40,
		AttackPower:         4,
		AttackDelay:         1,
		CooldownDelay:       1,
		MovementDelay:       2,
		SensorRadiusSquared: 17,
		AttackRadiusSquared: 13,
		BytecodeLimit:       10000,
		PartCost:            100,
		SpawnSource:         Archon,
		BuildTurns:          5,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Guard: {
		Type:                Guard,
		MaxHealth:           80,
		AttackPower:         10,
		AttackDelay:         2,
		CooldownDelay:       2,
		MovementDelay:       2,
		SensorRadiusSquared: 24,
		AttackRadiusSquared: 8,
		BytecodeLimit:       10000,
		PartCost:            100,
		SpawnSource:         Archon,
		BuildTurns:          6,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Viper: {
		Type:                Viper,
		MaxHealth:           60,
		AttackPower:         6,
		AttackDelay:         1.5,
		CooldownDelay:       1.5,
		MovementDelay:       1.5,
		SensorRadiusSquared: 20,
		AttackRadiusSquared: 10,
		BytecodeLimit:       10000,
		PartCost:            150,
		SpawnSource:         Archon,
		BuildTurns:          7,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Turret: {
		Type:                   Turret,
		MaxHealth:              100,
		AttackPower:            30,
		AttackDelay:            5,
		CooldownDelay:          5,
		MovementDelay:          0,
		SensorRadiusSquared:    48,
		AttackRadiusSquared:    48,
		MinAttackRadiusSquared: 24,
		BytecodeLimit:          10000,
		PartCost:               200,
		SpawnSource:            Beaver,
		Dependency:             Soldier,
		BuildTurns:             10,
		Flags:                  Flags{CanAttack: true, IsBuilding: true},
	},
	// TankedTurret is the mobile "TTM" transformation of a TURRET: same
	// weapon envelope, but mobile and without the dead zone, trading attack
	// power for mobility.
	TankedTurret: {
		Type:                TankedTurret,
		MaxHealth:           100,
		AttackPower:         18,
		AttackDelay:         5,
		CooldownDelay:       5,
		MovementDelay:       4,
		SensorRadiusSquared: 48,
		AttackRadiusSquared: 48,
		BytecodeLimit:       10000,
		Dependency:          Turret,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Basher: {
		Type:                Basher,
		MaxHealth:           50,
		AttackPower:         4,
		AttackDelay:         1,
		CooldownDelay:       1,
		MovementDelay:       2,
		SensorRadiusSquared: 17,
		AttackRadiusSquared: 2,
		BytecodeLimit:       10000,
		PartCost:            100,
		SpawnSource:         Archon,
		BuildTurns:          5,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Scout: {
		Type:                Scout,
		MaxHealth:           10,
		AttackPower:         0,
		MovementDelay:       1,
		SensorRadiusSquared: 53,
		BytecodeLimit:       10000,
		PartCost:            50,
		SpawnSource:         Archon,
		BuildTurns:          3,
		Flags:               Flags{CanMove: true},
	},
	Tower: {
		Type:                Tower,
		MaxHealth:           200,
		AttackPower:         17,
		AttackDelay:         3,
		CooldownDelay:       3,
		SensorRadiusSquared: 34,
		AttackRadiusSquared: 34,
		BytecodeLimit:       10000,
		Flags:               Flags{CanAttack: true, IsBuilding: true},
	},
	Commander: {
		Type:                Commander,
		MaxHealth:           200,
		AttackPower:         15,
		AttackDelay:         1,
		CooldownDelay:       1,
		MovementDelay:       1,
		SensorRadiusSquared: 24,
		AttackRadiusSquared: 13,
		BytecodeLimit:       10000,
		PartCost:            200,
		SpawnSource:         Archon,
		BuildTurns:          10,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	Missile: {
		Type:                Missile,
		MaxHealth:           1,
		AttackPower:         30,
		MovementDelay:       1,
		SensorRadiusSquared: 4,
		AttackRadiusSquared: 4,
		BytecodeLimit:       2000,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	ZombieDen: {
		Type:                ZombieDen,
		MaxHealth:           500,
		SensorRadiusSquared: 24,
		Flags:               Flags{},
	},
	StandardZombie: {
		Type:                StandardZombie,
		MaxHealth:           50,
		AttackPower:         5,
		AttackDelay:         1,
		CooldownDelay:       1,
		MovementDelay:       2,
		SensorRadiusSquared: 1 << 20, // zombies see everything, per §4.2
		AttackRadiusSquared: 2,
		BytecodeLimit:       5000,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	FastZombie: {
		Type:                FastZombie,
		MaxHealth:           30,
		AttackPower:         4,
		AttackDelay:         1,
		CooldownDelay:       1,
		MovementDelay:       1,
		SensorRadiusSquared: 1 << 20,
		AttackRadiusSquared: 2,
		BytecodeLimit:       5000,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	RangedZombie: {
		Type:                RangedZombie,
		MaxHealth:           35,
		AttackPower:         7,
		AttackDelay:         2,
		CooldownDelay:       2,
		MovementDelay:       2,
		SensorRadiusSquared: 1 << 20,
		AttackRadiusSquared: 13,
		BytecodeLimit:       5000,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
	BigZombie: {
		Type:                BigZombie,
		MaxHealth:           160,
		AttackPower:         15,
		AttackDelay:         3,
		CooldownDelay:       3,
		MovementDelay:       3,
		SensorRadiusSquared: 1 << 20,
		AttackRadiusSquared: 4,
		BytecodeLimit:       5000,
		Flags:               Flags{CanMove: true, CanAttack: true},
	},
}

// Lookup returns the blueprint for t and whether it was found.
func Lookup(t RobotType) (RobotTypeData, bool) {
	d, ok := RobotTypes[t]
	return d, ok
}
