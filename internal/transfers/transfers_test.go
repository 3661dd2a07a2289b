package transfers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataDir = "/data"

var errDiskGone = errors.New("input/output error")

// failingFs fails every open, as a disk that has gone away would.
type failingFs struct {
	afero.Fs
}

func (f failingFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: errDiskGone}
}

func (f failingFs) OpenFile(name string, _ int, _ os.FileMode) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: errDiskGone}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), dataDir)

	v, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ToggleVector{}, v)
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, dataDir)

	want := model.ToggleVector{true, false, true, false, false, false, false, false, true}
	require.NoError(t, store.Save(context.Background(), want))

	data, err := afero.ReadFile(fs, "/data/transfers_state.txt")
	require.NoError(t, err)
	assert.Equal(t, "true,false,true,false,false,false,false,false,true", string(data))

	got, err := NewFileStore(fs, dataDir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Saving what was loaded changes nothing.
	require.NoError(t, store.Save(context.Background(), got))
	again, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "too few tokens", record: "true,false"},
		{name: "too many tokens", record: "false,false,false,false,false,false,false,false,false,false"},
		{name: "not a boolean", record: "true,false,true,false,false,false,false,false,yes"},
		{name: "empty", record: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/data/transfers_state.txt", []byte(tt.record), 0o600))

			v, err := NewFileStore(fs, dataDir).Load(context.Background())
			assert.ErrorIs(t, err, common.ErrCorruptState)
			assert.Equal(t, model.ToggleVector{}, v)
		})
	}
}

func TestFileStore_LoadToleratesTrailingNewline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/transfers_state.txt",
		[]byte("TRUE, false,false,false,false,false,false,false,False\n"), 0o600))

	v, err := NewFileStore(fs, dataDir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ToggleVector{true}, v)
}

func TestFileStore_IOFailures(t *testing.T) {
	_, err := NewFileStore(failingFs{afero.NewMemMapFs()}, dataDir).Load(context.Background())
	var ioErr *common.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, errDiskGone)

	err = NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), dataDir).Save(context.Background(), model.ToggleVector{})
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.Contains(t, common.UserMessage(err), "Failed to save: ")
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore(afero.NewMemMapFs(), dataDir)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, model.ToggleVector{}), context.Canceled)
}

func TestBoard_LoadFallsBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/transfers_state.txt", []byte("true,false"), 0o600))

	board := NewBoard(NewFileStore(fs, dataDir), quietLogger())
	assert.Equal(t, Uninitialized, board.State().Phase)

	state := board.Load(context.Background())
	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, model.ToggleVector{}, state.Vector)
	assert.ErrorIs(t, state.Err, common.ErrCorruptState)
	assert.Contains(t, state.Message(), "Failed to load data: ")
}

func TestBoard_LoadFirstRun(t *testing.T) {
	board := NewBoard(NewFileStore(afero.NewMemMapFs(), dataDir), quietLogger())

	state := board.Load(context.Background())
	assert.Equal(t, Ready, state.Phase)
	assert.NoError(t, state.Err)
	assert.Empty(t, state.Message())
	assert.Equal(t, model.ToggleVector{}, state.Vector)
}

func TestBoard_ToggleEndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	board := NewBoard(NewFileStore(fs, dataDir), quietLogger())
	board.Load(context.Background())

	var (
		mu   sync.Mutex
		seen []State
	)
	unsubscribe := board.Subscribe(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})
	defer unsubscribe()

	want := model.ToggleVector{false, false, false, true}
	v, task, err := board.Toggle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, v)

	mu.Lock()
	require.NotEmpty(t, seen, "observers see the toggle before the save finishes")
	assert.Equal(t, want, seen[0].Vector)
	assert.Equal(t, Saving, seen[0].Phase)
	mu.Unlock()

	res := task.Wait(context.Background())
	require.True(t, res.IsOk())
	assert.Equal(t, want, res.Value())
	assert.Equal(t, Ready, board.State().Phase)

	loaded, err := NewFileStore(fs, dataDir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
}

func TestBoard_ToggleRejectsBadIndex(t *testing.T) {
	board := NewBoard(NewFileStore(afero.NewMemMapFs(), dataDir), quietLogger())
	board.Load(context.Background())

	for _, index := range []int{-1, 9, 100} {
		v, task, err := board.Toggle(context.Background(), index)
		assert.ErrorIs(t, err, common.ErrIndexOutOfRange)
		assert.Nil(t, task)
		assert.Equal(t, model.ToggleVector{}, v)
	}
	assert.Equal(t, Ready, board.State().Phase)
}

func TestBoard_SaveFailureKeepsVector(t *testing.T) {
	fs := afero.NewMemMapFs()
	board := NewBoard(NewFileStore(afero.NewReadOnlyFs(fs), dataDir), quietLogger())
	board.Load(context.Background())

	_, task, err := board.Toggle(context.Background(), 0)
	require.NoError(t, err)

	res := task.Wait(context.Background())
	assert.False(t, res.IsOk())

	state := board.State()
	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, model.ToggleVector{true}, state.Vector, "no rollback")
	assert.Contains(t, state.Message(), "Failed to save: ")
}

// flakyStore fails the first save and records what it was asked to write.
type flakyStore struct {
	saved []model.ToggleVector
	fails int
	mu    sync.Mutex
}

func (s *flakyStore) Load(context.Context) (model.ToggleVector, error) {
	return model.ToggleVector{}, nil
}

func (s *flakyStore) Save(_ context.Context, v model.ToggleVector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fails > 0 {
		s.fails--
		return &common.IOError{Op: "write", Path: "flaky", Err: errDiskGone}
	}
	s.saved = append(s.saved, v)
	return nil
}

func TestBoard_LaterSaveClearsError(t *testing.T) {
	store := &flakyStore{fails: 1}
	board := NewBoard(store, quietLogger())
	board.Load(context.Background())

	_, task, err := board.Toggle(context.Background(), 1)
	require.NoError(t, err)
	task.Wait(context.Background())
	require.Error(t, board.State().Err)

	_, task, err = board.Toggle(context.Background(), 2)
	require.NoError(t, err)
	task.Wait(context.Background())

	assert.NoError(t, board.State().Err)
	assert.Equal(t, []model.ToggleVector{{false, true, true}}, store.saved)
}

func TestBoard_BurstPersistsNewest(t *testing.T) {
	fs := afero.NewMemMapFs()
	board := NewBoard(NewFileStore(fs, dataDir), quietLogger())
	board.Load(context.Background())

	var want model.ToggleVector
	for _, index := range []int{0, 4, 8, 4, 2} {
		v, _, err := board.Toggle(context.Background(), index)
		require.NoError(t, err)
		want = v
	}
	board.Wait()

	assert.Equal(t, model.ToggleVector{true, false, true, false, false, false, false, false, true}, want)
	assert.Equal(t, Ready, board.State().Phase)

	loaded, err := NewFileStore(fs, dataDir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
}

func TestBoard_Unsubscribe(t *testing.T) {
	board := NewBoard(NewFileStore(afero.NewMemMapFs(), dataDir), quietLogger())

	calls := 0
	unsubscribe := board.Subscribe(func(State) { calls++ })
	board.Load(context.Background())
	assert.Equal(t, 2, calls, "loading then ready")

	unsubscribe()
	board.Load(context.Background())
	assert.Equal(t, 2, calls)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "saving", Saving.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
