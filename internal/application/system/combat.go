package system

import "github.com/younwookim/kingsandpigs/internal/domain/entity"

// CombatResult summarizes one tick of combat
type CombatResult struct {
	Hits         int // enemies struck by the player
	PlayerDamage int // damage the player took
}

// CombatSystem resolves player attacks and enemy contact attacks.
// An enemy is struck at most once per player attack: struck enemies are
// remembered until the player's hurtbox goes inactive.
type CombatSystem struct {
	struck map[*entity.Enemy]bool
}

// NewCombatSystem creates a combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{
		struck: make(map[*entity.Enemy]bool),
	}
}

// Update runs one tick of combat between player and enemies
func (s *CombatSystem) Update(player *entity.Player, enemies []*entity.Enemy) CombatResult {
	var res CombatResult
	res.Hits = s.playerAttack(player, enemies)
	res.PlayerDamage = s.enemyAttacks(player, enemies)
	return res
}

// Forget drops enemy from the struck set, used when it leaves the level
func (s *CombatSystem) Forget(e *entity.Enemy) {
	delete(s.struck, e)
}

func (s *CombatSystem) playerAttack(player *entity.Player, enemies []*entity.Enemy) int {
	if !player.CanDealDamage() {
		clear(s.struck)
		return 0
	}

	hits := 0
	for _, e := range enemies {
		if !e.Alive() || s.struck[e] {
			continue
		}
		if player.Hurtbox.Intersects(e.Rect) {
			e.TakeDamage()
			s.struck[e] = true
			hits++
		}
	}
	return hits
}

// enemyAttacks starts an attack for every living enemy touching the
// player and lands the ones whose attack animation just completed.
func (s *CombatSystem) enemyAttacks(player *entity.Player, enemies []*entity.Enemy) int {
	damage := 0
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		touching := e.Rect.Intersects(player.Rect)

		if e.AttackLanded() {
			if touching {
				player.TakeDamage(e.ContactDamage())
				damage += e.ContactDamage()
			}
			e.Idle()
			continue
		}
		if touching && e.Attack() {
			// pig art faces left
			e.FlipSprite = player.Rect.X > e.Rect.X
		}
	}
	return damage
}
