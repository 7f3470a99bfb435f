package catalog

// JSON schemas for the seed datasets. Loading fails visibly when a dataset
// does not match its schema; the engine never guesses at malformed seed data.

// ProductsSchema validates products.json.
const ProductsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "название", "статистика_отзывов"],
    "properties": {
      "id": {"type": ["string", "number"]},
      "название": {"type": "string", "minLength": 1},
      "описание": {"type": "string"},
      "цена": {"type": "number"},
      "категория": {
        "type": "object",
        "properties": {
          "id": {"type": ["string", "number"]},
          "название": {"type": "string"}
        }
      },
      "статистика_отзывов": {
        "type": "object",
        "required": ["всего_отзывов", "средний_рейтинг"],
        "properties": {
          "всего_отзывов": {"type": "integer", "minimum": 0},
          "средний_рейтинг": {"type": "number", "minimum": 0, "maximum": 5},
          "тональность": {
            "type": "object",
            "properties": {
              "позитивных": {"type": "integer", "minimum": 0},
              "негативных": {"type": "integer", "minimum": 0},
              "нейтральных": {"type": "integer", "minimum": 0}
            }
          },
          "топ_темы": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "название": {"type": "string"},
                "упоминаний": {"type": "integer"}
              }
            }
          }
        }
      },
      "источники_продаж": {
        "type": "array",
        "items": {
          "type": "object",
          "properties": {
            "id": {"type": ["string", "number"]},
            "название": {"type": "string"}
          }
        }
      }
    }
  }
}`

// UsersSchema validates users.json.
const UsersSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "логин", "роль"],
    "properties": {
      "id": {"type": ["string", "number"]},
      "фамилия": {"type": "string"},
      "имя": {"type": "string"},
      "отчество": {"type": "string"},
      "логин": {"type": "string", "minLength": 1},
      "пароль": {"type": "string"},
      "роль": {"type": "string"},
      "телефон": {"type": "string"},
      "email": {"type": "string"},
      "аватар": {"type": "string"},
      "статус": {"type": "string"}
    }
  }
}`

// SessionsSchema validates sessions.json. Built-in sessions may use legacy
// field names, so only the container shape and id presence are enforced;
// field aliasing is the normalizer's job.
const SessionsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id": {"type": ["string", "number"]}
    }
  }
}`
