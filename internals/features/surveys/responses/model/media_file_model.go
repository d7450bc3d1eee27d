package model

import (
	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
)

const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
	MediaKindAudio = "audio"
	MediaKindOther = "other"
)

var validMediaKinds = map[string]bool{
	MediaKindImage: true,
	MediaKindVideo: true,
	MediaKindAudio: true,
	MediaKindOther: true,
}

func ValidMediaKind(k string) bool { return validMediaKinds[k] }

// MediaFileModel = artefak upload. TEPAT SATU dari media_response_id /
// media_answer_id yang terisi (dijaga check constraint), dan ikut terhapus
// fisik kalau parent-nya di-hard-delete.
type MediaFileModel struct {
	audit.Fields

	MediaResponseID   *uuid.UUID `json:"media_response_id,omitempty" gorm:"column:media_response_id;type:uuid;index;constraint:OnDelete:CASCADE"`
	MediaAnswerID     *uuid.UUID `json:"media_answer_id,omitempty" gorm:"column:media_answer_id;type:uuid;index;constraint:OnDelete:CASCADE"`
	MediaKind         string     `json:"media_kind" gorm:"column:media_kind;type:varchar(20);not null;default:'other'"`
	MediaFileName     string     `json:"media_file_name" gorm:"column:media_file_name;type:varchar(255);not null"`
	MediaContentType  string     `json:"media_content_type" gorm:"column:media_content_type;type:varchar(100);not null"`
	MediaSizeBytes    int64      `json:"media_size_bytes" gorm:"column:media_size_bytes;not null;default:0"`
	MediaRelativePath string     `json:"media_relative_path" gorm:"column:media_relative_path;type:varchar(500);not null"`

	Response *SurveyResponseModel `json:"-" gorm:"foreignKey:MediaResponseID;references:ID;constraint:OnDelete:CASCADE"`
	Answer   *AnswerModel         `json:"-" gorm:"foreignKey:MediaAnswerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (MediaFileModel) TableName() string {
	return "media_files"
}
