package model

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestComparisonSetCapacity(t *testing.T) {
	var set ComparisonSet
	for i := 0; i < MaxComparisonModels; i++ {
		if err := set.Add(ComparisonModel{Make: "Make", Model: fmt.Sprintf("M%d", i), Year: 2023, Price: 1000000}); err != nil {
			t.Fatalf("Add(#%d) unexpected error: %v", i, err)
		}
	}
	before := set.Models()

	err := set.Add(ComparisonModel{Make: "Overflow", Model: "X", Year: 2023, Price: 1})
	if !errors.Is(err, ErrComparisonFull) {
		t.Fatalf("Add(6th) error = %v, want ErrComparisonFull", err)
	}
	if set.Len() != MaxComparisonModels {
		t.Errorf("Len() = %d after rejected add, want %d", set.Len(), MaxComparisonModels)
	}
	if !reflect.DeepEqual(set.Models(), before) {
		t.Error("rejected add mutated the set contents")
	}
}

func TestComparisonSetRemovePreservesOrder(t *testing.T) {
	var set ComparisonSet
	for _, m := range []string{"A", "B", "C"} {
		if err := set.Add(ComparisonModel{Make: "Make", Model: m, Year: 2023, Price: 1}); err != nil {
			t.Fatal(err)
		}
	}

	if err := set.Remove(1); err != nil {
		t.Fatalf("Remove(1) unexpected error: %v", err)
	}
	models := set.Models()
	if len(models) != 2 || models[0].Model != "A" || models[1].Model != "C" {
		t.Errorf("after Remove(1): %+v, want [A C]", models)
	}

	if err := set.Remove(5); !errors.Is(err, ErrComparisonIndex) {
		t.Errorf("Remove(5) error = %v, want ErrComparisonIndex", err)
	}
}

func TestComparisonSetModelsIsSnapshot(t *testing.T) {
	var set ComparisonSet
	_ = set.Add(ComparisonModel{Make: "Make", Model: "A", Year: 2023, Price: 1})

	snap := set.Models()
	snap[0].Model = "mutated"
	if set.Models()[0].Model != "A" {
		t.Error("Models() returned a live reference, want a copy")
	}
}
