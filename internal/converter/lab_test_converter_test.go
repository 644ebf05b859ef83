package converter

import (
	"testing"

	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
)

func labTest(name, priceMin, priceMax string) entity.LabTest {
	return entity.LabTest{
		ID:       uuid.New(),
		Name:     name,
		PriceMin: d(priceMin),
		PriceMax: d(priceMax),
		Status:   entity.TestStatusActive,
	}
}

func TestPriceString(t *testing.T) {
	single := labTest("CBC", "250", "250")
	if got := PriceString(&single); got != "250" {
		t.Errorf("PriceString = %q, want 250", got)
	}

	ranged := labTest("Lipid Profile", "200", "300")
	if got := PriceString(&ranged); got != "200-300" {
		t.Errorf("PriceString = %q, want 200-300", got)
	}
}

func TestGroupTestsByName(t *testing.T) {
	tests := []entity.LabTest{
		labTest("CBC", "250", "250"),
		labTest("Lipid Profile", "400", "400"),
		labTest("CBC", "300", "300"),
	}

	groups := GroupTestsByName(tests)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "CBC" {
		t.Errorf("first group = %q, want CBC", groups[0].Name)
	}
	if len(groups[0].Variants) != 2 {
		t.Errorf("CBC group has %d variants, want 2", len(groups[0].Variants))
	}
	if len(groups[1].Variants) != 1 {
		t.Errorf("Lipid Profile group has %d variants, want 1", len(groups[1].Variants))
	}
}

func TestTestToResponseNil(t *testing.T) {
	if TestToResponse(nil) != nil {
		t.Error("TestToResponse(nil) should return nil")
	}
}
