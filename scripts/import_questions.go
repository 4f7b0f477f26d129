// Bulk importer for placement questions.
//
// Admins normally manage questions one by one through the API; this script
// loads a whole bank at once, for first deployment or after authoring a new
// set offline.
//
// Usage: go run scripts/import_questions.go -file questions.json
//
// The input is a JSON array of objects with section, order, content,
// optionA..optionD and correctOption fields.

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"
	"qudurat_backend/pkg/database"
	"qudurat_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

type questionRow struct {
	Section       model.Section   `json:"section"`
	Order         int             `json:"order"`
	Content       string          `json:"content"`
	ContentImage  string          `json:"contentImage"`
	OptionA       string          `json:"optionA"`
	OptionB       string          `json:"optionB"`
	OptionC       string          `json:"optionC"`
	OptionD       string          `json:"optionD"`
	CorrectOption model.OptionKey `json:"correctOption"`
}

func main() {
	file := flag.String("file", "questions.json", "path to the question bank JSON file")
	flag.Parse()

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("cannot read question bank: %v", err)
	}

	var rows []questionRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatalf("cannot parse question bank: %v", err)
	}

	imported := 0
	for i, row := range rows {
		if row.Section != model.SectionQuantitative && row.Section != model.SectionVerbal {
			log.Printf("row %d skipped: unknown section %q", i, row.Section)
			continue
		}
		if !row.CorrectOption.Valid() {
			log.Printf("row %d skipped: invalid correct option %q", i, row.CorrectOption)
			continue
		}

		q := model.PlacementQuestion{
			Section:       row.Section,
			Order:         row.Order,
			Content:       row.Content,
			ContentImage:  row.ContentImage,
			OptionA:       row.OptionA,
			OptionB:       row.OptionB,
			OptionC:       row.OptionC,
			OptionD:       row.OptionD,
			CorrectOption: row.CorrectOption,
		}
		if err := db.Create(&q).Error; err != nil {
			log.Printf("row %d failed: %v", i, err)
			continue
		}
		imported++
	}

	log.Printf("imported %d of %d questions", imported, len(rows))
}
