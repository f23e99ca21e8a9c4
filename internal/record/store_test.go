package record

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "verification_code.json"))
}

func TestWriteProducesExactBytes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "Bank", Code: "483920"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, `{"发送方":"Bank","验证码":"483920"}`, string(data))
}

func TestWriteDoesNotEscapeHTML(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(context.Background(), domain.CodeRecord{Sender: "A&B <x>", Code: "000111"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, `{"发送方":"A&B <x>","验证码":"000111"}`, string(data))
}

func TestWriteQuotesSender(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(context.Background(), domain.CodeRecord{Sender: `say "hi"`, Code: "123456"}))

	rec, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, rec.Sender)
}

func TestWriteOverwritesWholeFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "A much longer sender name", Code: "111111"}))
	require.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "B", Code: "222222"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, `{"发送方":"B","验证码":"222222"}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestReadMissing(t *testing.T) {
	_, err := newTestStore(t).Read(context.Background())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestReadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := domain.CodeRecord{Sender: "银行", Code: "654321"}
	require.NoError(t, store.Write(context.Background(), want))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := store.Delete(ctx)
	assert.Equal(t, OutcomeNotFound, first.Kind)
	assert.Equal(t, "文件不存在：verification_code.json", first.Message())

	second := store.Delete(ctx)
	assert.Equal(t, OutcomeNotFound, second.Kind)
	assert.False(t, second.Failed())
}

func TestDeleteExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "Bank", Code: "483920"}))

	outcome := store.Delete(ctx)
	assert.Equal(t, OutcomeDeleted, outcome.Kind)
	assert.Equal(t, "已删除：verification_code.json", outcome.Message())

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, OutcomeNotFound, store.Delete(ctx).Kind)
}

func TestDeleteFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "verification_code.json"))
	require.NoError(t, store.Write(context.Background(), domain.CodeRecord{Sender: "Bank", Code: "483920"}))

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	outcome := store.Delete(context.Background())
	assert.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Error(t, outcome.Err)
	assert.Equal(t, "删除失败，请检查「所有文件访问」权限", outcome.Message())
}

func TestWriteFailsWhenDirectoryMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing", "verification_code.json"))
	assert.Error(t, store.Write(context.Background(), domain.CodeRecord{Sender: "x", Code: "123456"}))
}

func TestConcurrentWritesLeaveOneCompleteRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	a := `{"发送方":"A","验证码":"111111"}`
	b := `{"发送方":"B","验证码":"222222"}`

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "A", Code: "111111"}))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Write(ctx, domain.CodeRecord{Sender: "B", Code: "222222"}))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, []string{a, b}, string(data))
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path())
	assert.Equal(t, "verification_code.json", NewStore("").FileName())
}
