// internal/leaderboard/store.go
package leaderboard

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

const (
	FileName     = "leaderboard.spc"
	EntriesLimit = 3
	DefaultName  = "PLAYER"
)

// ErrCorrupt — файл таблицы рекордов не читается или не сходится контрольная сумма.
var ErrCorrupt = errors.New("leaderboard file is corrupt")

// Entry — одна строка таблицы рекордов.
type Entry struct {
	ID         string    `msgpack:"id"`
	PlayerName string    `msgpack:"player_name"`
	Score      int       `msgpack:"score"`
	Timestamp  time.Time `msgpack:"timestamp"`
}

type board struct {
	Entries []Entry `msgpack:"entries"`
}

// envelope — то, что лежит на диске: полезная нагрузка и её blake2b-256.
type envelope struct {
	Checksum []byte `msgpack:"checksum"`
	Payload  []byte `msgpack:"payload"`
}

// Store хранит лучшие результаты в data-каталоге.
type Store struct {
	path    string
	entries []Entry
	now     func() time.Time
}

// NewStore создаёт пустое хранилище; файл читается только в Load.
func NewStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, FileName),
		now:  time.Now,
	}
}

// Path — путь к файлу таблицы.
func (s *Store) Path() string {
	return s.path
}

// Load читает таблицу. Отсутствующий файл означает пустую таблицу без ошибки.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.entries = nil
		log.Printf("Leaderboard not found at %s, starting empty", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read leaderboard: %w", err)
	}

	entries, err := decode(data)
	if err != nil {
		return err
	}
	s.entries = rank(entries)
	log.Printf("Leaderboard loaded with entry count: %d", len(s.entries))
	return nil
}

// Save пишет таблицу через временный файл, чтобы не оставить половину файла при сбое.
func (s *Store) Save() error {
	data, err := encode(s.entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create leaderboard dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	log.Printf("Leaderboard saved with entry count: %d", len(s.entries))
	return nil
}

// Add добавляет результат, оставляет EntriesLimit лучших и сохраняет файл.
// При равном счёте новая запись встаёт выше старой.
func (s *Store) Add(playerName string, score int) (Entry, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = DefaultName
	}
	e := Entry{
		ID:         uuid.NewString(),
		PlayerName: name,
		Score:      score,
		Timestamp:  s.now().UTC(),
	}
	s.entries = rank(append([]Entry{e}, s.entries...))
	return e, s.Save()
}

// Entries — копия таблицы, лучший результат первым.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Best — лучший результат, если он есть.
func (s *Store) Best() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[0], true
}

// rank сортирует по убыванию счёта (стабильно) и обрезает до EntriesLimit.
func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > EntriesLimit {
		entries = entries[:EntriesLimit]
	}
	return entries
}

func encode(entries []Entry) ([]byte, error) {
	payload, err := msgpack.Marshal(&board{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("encode leaderboard: %w", err)
	}
	sum := blake2b.Sum256(payload)
	data, err := msgpack.Marshal(&envelope{Checksum: sum[:], Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode leaderboard envelope: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]Entry, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	sum := blake2b.Sum256(env.Payload)
	if !bytes.Equal(sum[:], env.Checksum) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	var b board
	if err := msgpack.Unmarshal(env.Payload, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return b.Entries, nil
}
