package service

import (
	"testing"

	"qudurat_backend/internal/model"
)

func validQuestionRequest() PlacementQuestionRequest {
	return PlacementQuestionRequest{
		Section:       model.SectionQuantitative,
		Order:         1,
		Content:       "٥ × ٤ = ؟",
		OptionA:       "١٠",
		OptionB:       "٢٠",
		OptionC:       "٢٥",
		OptionD:       "٤٥",
		CorrectOption: model.OptionB,
	}
}

func TestPlacementQuestionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlacementQuestionRequest)
		wantErr bool
	}{
		{"valid text question", func(r *PlacementQuestionRequest) {}, false},
		{"valid image-only question", func(r *PlacementQuestionRequest) {
			r.Content = ""
			r.ContentImage = "/uploads/placement/1.png"
		}, false},
		{"unknown section", func(r *PlacementQuestionRequest) {
			r.Section = "listening"
		}, true},
		{"no content at all", func(r *PlacementQuestionRequest) {
			r.Content = ""
			r.ContentImage = ""
		}, true},
		{"correct option out of range", func(r *PlacementQuestionRequest) {
			r.CorrectOption = "E"
		}, true},
		{"correct option empty", func(r *PlacementQuestionRequest) {
			r.CorrectOption = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuestionRequest()
			tt.mutate(&req)
			err := req.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlacementQuestionRequestApply(t *testing.T) {
	req := validQuestionRequest()
	var q model.PlacementQuestion
	req.apply(&q)

	if q.Section != req.Section || q.Content != req.Content || q.CorrectOption != req.CorrectOption {
		t.Fatalf("apply() produced %+v from %+v", q, req)
	}
	if q.OptionB != req.OptionB || q.Order != req.Order {
		t.Fatalf("apply() dropped fields: %+v", q)
	}
}
