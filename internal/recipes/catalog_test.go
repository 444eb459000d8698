package recipes

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRecipes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write recipes file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeRecipes(t, `{
		"burger_sales": {
			"name": "Burger",
			"ingredients": [
				{"item": "beef_patty", "amount": 1, "unit": "pcs"},
				{"item": "burger_bun", "amount": 1, "unit": "pcs"}
			]
		},
		"salad_sales": {
			"name": "Salad",
			"ingredients": [
				{"item": "lettuce", "amount": 150, "unit": "g"}
			]
		}
	}`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if catalog.Len() != 2 {
		t.Errorf("expected 2 recipes, got %d", catalog.Len())
	}

	recipe, ok := catalog.Recipe("burger_sales")
	if !ok {
		t.Fatal("expected burger_sales recipe to exist")
	}
	if recipe.Name != "Burger" {
		t.Errorf("expected name Burger, got %q", recipe.Name)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("expected 2 ingredients, got %d", len(recipe.Ingredients))
	}

	if _, ok := catalog.Recipe("pizza_sales"); ok {
		t.Error("expected unknown key to report not found")
	}
}

func TestLoad_KeysSorted(t *testing.T) {
	path := writeRecipes(t, `{
		"salad_sales": {"name": "Salad", "ingredients": [{"item": "lettuce", "amount": 1, "unit": "kg"}]},
		"burger_sales": {"name": "Burger", "ingredients": [{"item": "beef", "amount": 1, "unit": "kg"}]},
		"pizza_sales": {"name": "Pizza", "ingredients": [{"item": "dough", "amount": 1, "unit": "pcs"}]}
	}`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	keys := catalog.Keys()
	expected := []string{"burger_sales", "pizza_sales", "salad_sales"}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("keys[%d]: expected %q, got %q", i, k, keys[i])
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeRecipes(t, `{"burger_sales": `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoad_EmptyCatalog(t *testing.T) {
	path := writeRecipes(t, `{}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestLoad_RejectsZeroAmount(t *testing.T) {
	path := writeRecipes(t, `{
		"burger_sales": {
			"name": "Burger",
			"ingredients": [{"item": "beef_patty", "amount": 0, "unit": "pcs"}]
		}
	}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for zero per-unit amount")
	}
}

func TestLen_NilCatalog(t *testing.T) {
	var catalog *Catalog
	if catalog.Len() != 0 {
		t.Error("expected nil catalog to have length 0")
	}
}
