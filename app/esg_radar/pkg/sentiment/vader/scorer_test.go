package vader

import (
	"context"
	"testing"
)

func TestScorer_Negativity(t *testing.T) {
	s := NewScorer()
	ctx := context.Background()

	negative := s.Negativity(ctx, "The company was fined for a terrible toxic spill that killed wildlife.")
	neutral := s.Negativity(ctx, "The report has twelve chapters.")

	if negative <= 0.1 {
		t.Errorf("negative sentence scored %v, want > 0.1", negative)
	}
	if neutral != 0 {
		t.Errorf("neutral sentence scored %v, want 0", neutral)
	}
	if negative < 0 || negative > 1 {
		t.Errorf("score %v out of range", negative)
	}

	// 同一句子重复评分结果一致
	if again := s.Negativity(ctx, "The company was fined for a terrible toxic spill that killed wildlife."); again != negative {
		t.Errorf("repeat score = %v, want %v", again, negative)
	}
}
