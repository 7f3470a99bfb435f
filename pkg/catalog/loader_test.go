package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProducts = `[
  {
    "id": 1,
    "название": "Беспроводные наушники",
    "цена": 4990,
    "категория": {"id": 10, "название": "Электроника"},
    "статистика_отзывов": {
      "всего_отзывов": 120,
      "средний_рейтинг": 4.2,
      "тональность": {"позитивных": 90, "негативных": 20, "нейтральных": 10},
      "топ_темы": [{"название": "звук", "упоминаний": 45}]
    },
    "источники_продаж": [{"id": 1, "название": "Ozon"}]
  },
  {
    "id": "p-2",
    "название": "Чайник",
    "категория": {"название": "Бытовая техника"},
    "статистика_отзывов": {"всего_отзывов": 0, "средний_рейтинг": 0},
    "источники_продаж": []
  }
]`

const testUsers = `[
  {"id": 1, "фамилия": "Иванов", "имя": "Пётр", "отчество": "Сергеевич",
   "логин": "ivanov", "пароль": "qwerty", "роль": "аналитик",
   "email": "ivanov@example.com", "аватар": "/data/img/avatars/ivanov.png"},
  {"id": 2, "фамилия": "Смирнова", "имя": "Анна",
   "логин": "smirnova", "пароль": "12345", "роль": "администратор"}
]`

const testSessions = `[
  {"id": "s-1", "userId": 1, "title": "Сравнение наушников",
   "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-02T10:00:00Z"}
]`

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDataset(t, dir, "products.json", testProducts)
	writeDataset(t, dir, "users.json", testUsers)
	writeDataset(t, dir, "sessions.json", testSessions)
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := setupDataDir(t)
	loader := NewLoader(dir, zerolog.Nop())

	cat, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, cat.Products, 2)
	assert.Equal(t, ID("1"), cat.Products[0].ID)
	assert.Equal(t, "Беспроводные наушники", cat.Products[0].Name)
	assert.Equal(t, "Электроника", cat.Products[0].Category.Name)
	assert.Equal(t, 120, cat.Products[0].ReviewStats.TotalReviews)
	assert.Equal(t, ID("p-2"), cat.Products[1].ID)

	require.Len(t, cat.Users, 2)
	assert.Equal(t, "Иванов Пётр", cat.Users[0].DisplayName())
	assert.Equal(t, "Иванов Пётр Сергеевич", cat.Users[0].FullName())
	assert.Equal(t, "Смирнова Анна", cat.Users[1].FullName())

	require.Len(t, cat.RawSessions, 1)
	assert.Equal(t, "Сравнение наушников", cat.RawSessions[0]["title"])
}

func TestLoader_MissingFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir, zerolog.Nop())

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_SchemaViolation(t *testing.T) {
	dir := setupDataDir(t)
	// Product without a name fails validation
	writeDataset(t, dir, "products.json", `[{"id": 1}]`)

	loader := NewLoader(dir, zerolog.Nop())
	_, err := loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products.json")
}

func TestLoader_NonArrayDataset(t *testing.T) {
	dir := setupDataDir(t)
	writeDataset(t, dir, "users.json", `{"id": 1}`)

	loader := NewLoader(dir, zerolog.Nop())
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestCatalog_ResolveProducts(t *testing.T) {
	dir := setupDataDir(t)
	cat, err := NewLoader(dir, zerolog.Nop()).Load()
	require.NoError(t, err)

	// Unknown ids are dropped silently
	resolved := cat.ResolveProducts([]ID{"1", "missing", "p-2"})
	require.Len(t, resolved, 2)
	assert.Equal(t, ID("1"), resolved[0].ID)
	assert.Equal(t, ID("p-2"), resolved[1].ID)
}

func TestCatalog_FindUser(t *testing.T) {
	dir := setupDataDir(t)
	cat, err := NewLoader(dir, zerolog.Nop()).Load()
	require.NoError(t, err)

	u, ok := cat.FindUser("2")
	require.True(t, ok)
	assert.Equal(t, "администратор", u.Role)

	_, ok = cat.FindUser("99")
	assert.False(t, ok)
}
