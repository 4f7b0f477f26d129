package model

import "time"

// Section is one of the two fixed placement test categories.
type Section string

const (
	SectionQuantitative Section = "quantitative"
	SectionVerbal       Section = "verbal"
)

// OptionKey identifies one of the four answer slots of a question.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

func (k OptionKey) Valid() bool {
	switch k {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// PlacementQuestion is a four-option question belonging to one section.
// Prompt and options may each carry text, an image URL, or both; at least
// one of Content/ContentImage must be present.
// swagger:model PlacementQuestion
type PlacementQuestion struct {
	BaseModel
	Section       Section   `gorm:"size:20;index;not null" json:"section"`
	Order         int       `gorm:"default:0" json:"order"` // presentation order within the section
	Content       string    `gorm:"type:text" json:"content"`
	ContentImage  string    `gorm:"size:255" json:"contentImage,omitempty"`
	OptionA       string    `gorm:"type:text" json:"optionA"`
	OptionAImage  string    `gorm:"size:255" json:"optionAImage,omitempty"`
	OptionB       string    `gorm:"type:text" json:"optionB"`
	OptionBImage  string    `gorm:"size:255" json:"optionBImage,omitempty"`
	OptionC       string    `gorm:"type:text" json:"optionC"`
	OptionCImage  string    `gorm:"size:255" json:"optionCImage,omitempty"`
	OptionD       string    `gorm:"type:text" json:"optionD"`
	OptionDImage  string    `gorm:"size:255" json:"optionDImage,omitempty"`
	CorrectOption OptionKey `gorm:"size:1;not null" json:"correctOption"`
}

func (PlacementQuestion) TableName() string {
	return "placement_questions"
}

// PlacementResult is the persisted outcome of a finalized placement test,
// upserted per user. A retake overwrites the previous row.
// swagger:model PlacementResult
type PlacementResult struct {
	BaseModel
	UserID uint  `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	QuantCorrect    int `json:"quantCorrect"`
	QuantTotal      int `json:"quantTotal"`
	QuantPercentage int `json:"quantPercentage"`

	VerbalCorrect    int `json:"verbalCorrect"`
	VerbalTotal      int `json:"verbalTotal"`
	VerbalPercentage int `json:"verbalPercentage"`

	CompletedAt time.Time `json:"completedAt"`
}

func (PlacementResult) TableName() string {
	return "placement_results"
}
