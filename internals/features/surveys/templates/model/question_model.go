package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"mysteryshopper_backend/internals/audit"
)

/* =========================================================
   QUESTION TYPES
   Tipe menentukan bentuk payload jawaban DAN cara skoring:
   yes_no dan rating_1_5 menyumbang skor, number dipakai apa
   adanya, text & pilihan tidak menyumbang skor.
========================================================= */

const (
	QuestionTypeText           = "text"
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeNumber         = "number"
	QuestionTypeYesNo          = "yes_no"
	QuestionTypeRating1to5     = "rating_1_5"
)

var validQuestionTypes = map[string]bool{
	QuestionTypeText:           true,
	QuestionTypeSingleChoice:   true,
	QuestionTypeMultipleChoice: true,
	QuestionTypeNumber:         true,
	QuestionTypeYesNo:          true,
	QuestionTypeRating1to5:     true,
}

func ValidQuestionType(t string) bool { return validQuestionTypes[t] }

// QuestionModel = satu pertanyaan pada template, berurutan per order.
type QuestionModel struct {
	audit.Fields

	QuestionTemplateID   uuid.UUID      `json:"question_template_id" gorm:"column:question_template_id;type:uuid;not null;index"`
	QuestionText         string         `json:"question_text" gorm:"column:question_text;type:text;not null"`
	QuestionType         string         `json:"question_type" gorm:"column:question_type;type:varchar(30);not null"`
	QuestionOrder        int            `json:"question_order" gorm:"column:question_order;not null;default:0"`
	QuestionWeight       float64        `json:"question_weight" gorm:"column:question_weight;type:numeric(10,2);not null;default:1"`
	QuestionOptions      datatypes.JSON `json:"question_options,omitempty" gorm:"column:question_options;type:jsonb"`
	QuestionAllowComment bool           `json:"question_allow_comment" gorm:"column:question_allow_comment;not null;default:false"`
	QuestionAllowMedia   bool           `json:"question_allow_media" gorm:"column:question_allow_media;not null;default:false"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// OptionLabels membaca daftar label dari kolom jsonb question_options.
func (q *QuestionModel) OptionLabels() ([]string, error) {
	if len(q.QuestionOptions) == 0 {
		return nil, nil
	}
	var labels []string
	if err := json.Unmarshal(q.QuestionOptions, &labels); err != nil {
		return nil, fmt.Errorf("question_options bukan array string: %w", err)
	}
	return labels, nil
}

// ValidateShape memastikan kombinasi tipe + options konsisten
// sebelum question disimpan.
func (q *QuestionModel) ValidateShape() error {
	if !ValidQuestionType(q.QuestionType) {
		return fmt.Errorf("tipe pertanyaan '%s' tidak dikenal", q.QuestionType)
	}
	if q.QuestionWeight < 0 {
		return fmt.Errorf("bobot pertanyaan tidak boleh negatif")
	}

	labels, err := q.OptionLabels()
	if err != nil {
		return err
	}

	switch q.QuestionType {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice:
		if len(labels) < 2 {
			return fmt.Errorf("pertanyaan pilihan butuh minimal 2 opsi")
		}
	default:
		if len(labels) > 0 {
			return fmt.Errorf("tipe '%s' tidak memakai opsi", q.QuestionType)
		}
	}
	return nil
}
