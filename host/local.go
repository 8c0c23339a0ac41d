package host

import "sync"

// Local is an in-memory Host. Scene and characteristic
// events are published synchronously on the caller's
// goroutine.
type Local struct {
	scenes          *Bus[Scene]
	characteristics *Bus[string]

	mu    sync.Mutex
	level *Level
}

var _ Host = (*Local)(nil)

// NewLocal creates a Local host with no level loaded.
func NewLocal() *Local {
	return &Local{
		scenes:          NewBus[Scene](),
		characteristics: NewBus[string](),
	}
}

// OnSceneLoaded implements SceneSource.
func (lo *Local) OnSceneLoaded(fn func(Scene)) func() {
	return lo.scenes.Subscribe(fn)
}

// OnCharacteristicSelected implements
// CharacteristicSource.
func (lo *Local) OnCharacteristicSelected(
	fn func(name string),
) func() {
	return lo.characteristics.Subscribe(fn)
}

// CurrentLevel implements LevelProvider.
func (lo *Local) CurrentLevel() (Level, error) {
	lo.mu.Lock()
	defer lo.mu.Unlock()

	if lo.level == nil {
		return Level{}, ErrLevelUnavailable
	}

	return *lo.level, nil
}

// SetLevel replaces the current level.
func (lo *Local) SetLevel(lv Level) {
	lo.mu.Lock()
	lo.level = &lv
	lo.mu.Unlock()
}

// ClearLevel forgets the current level.
func (lo *Local) ClearLevel() {
	lo.mu.Lock()
	lo.level = nil
	lo.mu.Unlock()
}

// LoadScene notifies scene listeners that name loaded.
func (lo *Local) LoadScene(name string) {
	lo.scenes.Publish(Scene{Name: name})
}

// SelectCharacteristic notifies characteristic listeners.
func (lo *Local) SelectCharacteristic(name string) {
	lo.characteristics.Publish(name)
}

// Listeners returns the number of scene and
// characteristic listeners.
func (lo *Local) Listeners() (scenes, characteristics int) {
	return lo.scenes.Count(), lo.characteristics.Count()
}
