package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/config"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/pkg/database"
)

// Команда наполнения базы демонстрационными данными:
// тестовый пользователь и две викторины со всеми типами вопросов.
// Запускается после миграций, повторный запуск добавляет дубликаты викторин.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		log.Printf("Failed to seed database: %v", err)
		os.Exit(1)
	}

	log.Println("Демонстрационные данные успешно созданы")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Тестовый пользователь (создается один раз)
		var userCount int64
		if err := tx.Model(&entity.User{}).Where("username = ?", "testuser").Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			user := entity.User{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "testpass123", // хешируется в BeforeSave
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("Создан тестовый пользователь: %s", user.Username)
		}

		category := entity.Category{Name: "Программирование", Description: "Викторины о языках и технологиях"}
		if err := tx.Where(entity.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}

		tagBasics := entity.Tag{Name: "основы"}
		if err := tx.Where(entity.Tag{Name: tagBasics.Name}).FirstOrCreate(&tagBasics).Error; err != nil {
			return err
		}
		tagWeb := entity.Tag{Name: "веб"}
		if err := tx.Where(entity.Tag{Name: tagWeb.Name}).FirstOrCreate(&tagWeb).Error; err != nil {
			return err
		}

		quiz1 := entity.Quiz{
			Title:       "Programming Basics",
			Description: "Test your fundamental programming knowledge",
			IsActive:    true,
			Difficulty:  entity.DifficultyEasy,
			CategoryID:  &category.ID,
			Tags:        []entity.Tag{tagBasics},
			Questions: []entity.Question{
				{
					QuestionType: entity.QuestionTypeSingle,
					Text:         "What does HTML stand for?",
					Points:       1,
					Order:        1,
					Answers: []entity.Answer{
						{Text: "Hyper Text Markup Language", IsCorrect: true, Order: 1},
						{Text: "High Tech Modern Language", Order: 2},
						{Text: "Hyper Transfer Markup Language", Order: 3},
					},
				},
				{
					QuestionType: entity.QuestionTypeSingle,
					Text:         "Which symbol is used for single-line comments in Python?",
					Points:       1,
					Order:        2,
					Answers: []entity.Answer{
						{Text: "#", IsCorrect: true, Order: 1},
						{Text: "//", Order: 2},
						{Text: "/*", Order: 3},
					},
				},
				{
					QuestionType: entity.QuestionTypeMulti,
					Text:         "Which of these are valid Python data types?",
					Points:       2,
					Order:        3,
					Answers: []entity.Answer{
						{Text: "int", IsCorrect: true, Order: 1},
						{Text: "string", IsCorrect: true, Order: 2},
						{Text: "char", Order: 3},
						{Text: "list", IsCorrect: true, Order: 4},
					},
				},
				{
					QuestionType: entity.QuestionTypeSelectWords,
					Text:         "Select the programming languages from this sentence: Python and JavaScript are widely used programming languages for web development.",
					Points:       2,
					Order:        4,
					Answers: []entity.Answer{
						{Text: "Python", IsCorrect: true, Order: 1},
						{Text: "JavaScript", IsCorrect: true, Order: 2},
						{Text: "web", Order: 3},
						{Text: "development", Order: 4},
					},
				},
			},
		}
		if err := tx.Create(&quiz1).Error; err != nil {
			return err
		}

		quiz2 := entity.Quiz{
			Title:       "Web Development Basics",
			Description: "Test your knowledge of web development",
			IsActive:    true,
			Difficulty:  entity.DifficultyMedium,
			CategoryID:  &category.ID,
			Tags:        []entity.Tag{tagWeb},
			Questions: []entity.Question{
				{
					QuestionType: entity.QuestionTypeSingle,
					Text:         "Which tag is used for the largest heading in HTML?",
					Points:       1,
					Order:        1,
					Answers: []entity.Answer{
						{Text: "<h1>", IsCorrect: true, Order: 1},
						{Text: "<h6>", Order: 2},
						{Text: "<header>", Order: 3},
					},
				},
				{
					QuestionType: entity.QuestionTypeMulti,
					Text:         "Which of these are CSS positioning types?",
					Points:       2,
					Order:        2,
					Answers: []entity.Answer{
						{Text: "relative", IsCorrect: true, Order: 1},
						{Text: "absolute", IsCorrect: true, Order: 2},
						{Text: "floating", Order: 3},
						{Text: "fixed", IsCorrect: true, Order: 4},
					},
				},
				{
					QuestionType: entity.QuestionTypeSelectWords,
					Text:         "Select the frontend frameworks from this sentence: React and Vue are popular JavaScript frameworks for building user interfaces.",
					Points:       2,
					Order:        3,
					Answers: []entity.Answer{
						{Text: "React", IsCorrect: true, Order: 1},
						{Text: "Vue", IsCorrect: true, Order: 2},
						{Text: "JavaScript", Order: 3},
						{Text: "interfaces", Order: 4},
					},
				},
			},
		}
		if err := tx.Create(&quiz2).Error; err != nil {
			return err
		}

		log.Printf("Созданы викторины: %q (%d вопросов), %q (%d вопросов)",
			quiz1.Title, len(quiz1.Questions), quiz2.Title, len(quiz2.Questions))
		return nil
	})
}
