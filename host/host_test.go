package host_test

import (
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/songstatus/host"
)

func TestBus_publish_in_subscription_order(t *testing.T) {
	t.Parallel()

	bus := host.NewBus[int]()

	var got []string

	bus.Subscribe(func(n int) { got = append(got, "a") })
	bus.Subscribe(func(n int) { got = append(got, "b") })
	bus.Subscribe(func(n int) { got = append(got, "c") })

	bus.Publish(1)

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBus_unsubscribe(t *testing.T) {
	t.Parallel()

	bus := host.NewBus[string]()
	calls := 0

	unsub := bus.Subscribe(func(string) { calls++ })
	bus.Subscribe(func(string) {})

	require.Equal(t, 2, bus.Count())

	unsub()
	unsub()

	bus.Publish("x")

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, bus.Count())
}

func TestBus_unsubscribe_during_publish(t *testing.T) {
	t.Parallel()

	bus := host.NewBus[int]()
	calls := 0

	var unsub func()

	unsub = bus.Subscribe(func(int) {
		calls++
		unsub()
	})

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Count())
}

func TestBus_concurrent_subscribe(t *testing.T) {
	t.Parallel()

	bus := host.NewBus[int]()

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unsub := bus.Subscribe(func(int) {})
			bus.Publish(0)
			unsub()
		}()
	}

	wg.Wait()

	assert.Equal(t, 0, bus.Count())
}

func TestLocal_level_lifecycle(t *testing.T) {
	t.Parallel()

	lo := host.NewLocal()

	_, err := lo.CurrentLevel()
	require.ErrorIs(t, err, host.ErrLevelUnavailable)

	lo.SetLevel(host.Level{SongName: "Ghost"})

	lv, err := lo.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, "Ghost", lv.SongName)

	lo.ClearLevel()

	_, err = lo.CurrentLevel()
	require.ErrorIs(t, err, host.ErrLevelUnavailable)
}

func TestLocal_dispatches_events(t *testing.T) {
	t.Parallel()

	lo := host.NewLocal()

	var (
		scenes []string
		chars  []string
	)

	unsubScene := lo.OnSceneLoaded(func(sc host.Scene) {
		scenes = append(scenes, sc.Name)
	})
	unsubChar := lo.OnCharacteristicSelected(func(name string) {
		chars = append(chars, name)
	})

	lo.LoadScene("Menu")
	lo.SelectCharacteristic("One Saber")

	nScenes, nChars := lo.Listeners()
	assert.Equal(t, 1, nScenes)
	assert.Equal(t, 1, nChars)

	unsubScene()
	unsubChar()

	lo.LoadScene("StandardLevel")
	lo.SelectCharacteristic("No Arrows")

	assert.Equal(t, []string{"Menu"}, scenes)
	assert.Equal(t, []string{"One Saber"}, chars)
}

func TestModifiers_IsWithoutModifiers(t *testing.T) {
	t.Parallel()

	assert.True(t, host.Modifiers{}.IsWithoutModifiers())
	assert.True(
		t, host.Modifiers{SongSpeedMul: 1}.IsWithoutModifiers(),
	)
	assert.False(
		t, host.Modifiers{SongSpeedMul: 1.5}.IsWithoutModifiers(),
	)
	assert.False(
		t, host.Modifiers{NoFail: true}.IsWithoutModifiers(),
	)
	assert.False(
		t, host.Modifiers{NoObstacles: true}.IsWithoutModifiers(),
	)
}

func TestDifficulty_names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Easy", host.Easy.Name())
	assert.Equal(t, "Expert", host.Expert.Name())
	assert.Equal(t, "Expert+", host.ExpertPlus.Name())
	assert.Equal(t, "ExpertPlus", host.ExpertPlus.String())
	assert.Equal(t, "Difficulty(9)", host.Difficulty(9).String())
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]host.Difficulty{
		"easy":       host.Easy,
		"Normal":     host.Normal,
		" HARD ":     host.Hard,
		"Expert":     host.Expert,
		"ExpertPlus": host.ExpertPlus,
		"Expert+":    host.ExpertPlus,
	} {
		got, err := host.ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := host.ParseDifficulty("Nightmare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing difficulty")
}

func TestLevel_json_round_trip(t *testing.T) {
	t.Parallel()

	raw := `{
		"songName": "Ghost",
		"authorName": "Camellia",
		"difficulty": "Expert+",
		"beatsPerMinute": 200.5,
		"notesCount": 1500,
		"modifiers": {"noBombs": true, "songSpeedMul": 1.2}
	}`

	var lv host.Level

	require.NoError(t, json.Unmarshal([]byte(raw), &lv))
	assert.Equal(t, host.ExpertPlus, lv.Difficulty)
	assert.InDelta(t, 200.5, lv.BeatsPerMinute, 1e-9)
	assert.Equal(t, 1500, lv.NotesCount)
	assert.True(t, lv.Modifiers.NoBombs)

	out, err := json.Marshal(lv)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"difficulty":"ExpertPlus"`)
}
