package browse

import "time"

// SetClock replaces the manager's clock.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }
