package main

import (
	"github.com/datlq-dev/quizhub/config"
	"github.com/datlq-dev/quizhub/database"
	"github.com/datlq-dev/quizhub/internal/logger"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/rs/zerolog/log"
)

// Seeds the database with sample quizzes for local development.
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.AutoMigrate(&model.Quiz{}, &model.Question{}); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	quizzes := []model.Quiz{
		{
			Title:       "JavaScript Fundamentals",
			Description: "Test your knowledge of JavaScript basics including variables, functions, and data types.",
			TimeLimit:   600,
			Questions: []model.Question{
				{
					Text:          "What is the correct way to declare a variable in JavaScript?",
					OptionA:       "var myVar = 10;",
					OptionB:       "variable myVar = 10;",
					OptionC:       "v myVar = 10;",
					OptionD:       "dim myVar = 10;",
					CorrectAnswer: "A",
					Order:         1,
				},
				{
					Text:          "Which method is used to add an element to the end of an array?",
					OptionA:       "append()",
					OptionB:       "push()",
					OptionC:       "add()",
					OptionD:       "insert()",
					CorrectAnswer: "B",
					Order:         2,
				},
				{
					Text:          "What does the === operator do in JavaScript?",
					OptionA:       "Compares values only",
					OptionB:       "Compares types only",
					OptionC:       "Compares both value and type",
					OptionD:       "Assigns a value",
					CorrectAnswer: "C",
					Order:         3,
				},
				{
					Text:          "Which of the following is NOT a JavaScript data type?",
					OptionA:       "String",
					OptionB:       "Boolean",
					OptionC:       "Float",
					OptionD:       "Undefined",
					CorrectAnswer: "C",
					Order:         4,
				},
				{
					Text:          "What is the output of: typeof null?",
					OptionA:       "null",
					OptionB:       "undefined",
					OptionC:       "object",
					OptionD:       "number",
					CorrectAnswer: "C",
					Order:         5,
				},
			},
		},
		{
			Title:       "Go Basics",
			Description: "Core Go language concepts: types, slices, goroutines, and error handling.",
			TimeLimit:   600,
			Questions: []model.Question{
				{
					Text:          "Which keyword declares a new goroutine?",
					OptionA:       "async",
					OptionB:       "go",
					OptionC:       "spawn",
					OptionD:       "thread",
					CorrectAnswer: "B",
					Order:         1,
				},
				{
					Text:          "What is the zero value of a slice?",
					OptionA:       "an empty slice",
					OptionB:       "0",
					OptionC:       "nil",
					OptionD:       "undefined",
					CorrectAnswer: "C",
					Order:         2,
				},
				{
					Text:          "How are errors conventionally handled in Go?",
					OptionA:       "try/catch blocks",
					OptionB:       "returned as the last return value",
					OptionC:       "global error handlers",
					OptionD:       "exceptions",
					CorrectAnswer: "B",
					Order:         3,
				},
				{
					Text:          "Which builtin appends to a slice?",
					OptionA:       "push()",
					OptionB:       "add()",
					OptionC:       "append()",
					OptionD:       "insert()",
					CorrectAnswer: "C",
					Order:         4,
				},
				{
					Text:          "What does the defer keyword do?",
					OptionA:       "Delays goroutine start",
					OptionB:       "Schedules a call to run when the function returns",
					OptionC:       "Skips a statement",
					OptionD:       "Defines a constant",
					CorrectAnswer: "B",
					Order:         5,
				},
			},
		},
	}

	for i := range quizzes {
		if err := db.Create(&quizzes[i]).Error; err != nil {
			log.Fatal().Err(err).Str("title", quizzes[i].Title).Msg("Failed to seed quiz")
		}
		log.Info().Uint("quizID", quizzes[i].ID).Str("title", quizzes[i].Title).
			Int("questions", len(quizzes[i].Questions)).Msg("Seeded quiz")
	}
	log.Info().Msg("Seeding completed")
}
