package repository

import (
	"strings"
	"testing"
)

func TestDeleteQueryIsOwnerScoped(t *testing.T) {
	query := strings.ToLower(deleteOwnedVenueQuery)

	requiredFragments := []string{
		"delete from venues",
		"where id = $1 and owner_id = $2",
		"returning",
	}

	for _, fragment := range requiredFragments {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected owner-scoped delete fragment %q to be present", fragment)
		}
	}
}

func TestListByOwnerQueryFiltersOnOwner(t *testing.T) {
	query := strings.ToLower(listVenuesByOwnerQuery)

	if !strings.Contains(query, "where owner_id = $1") {
		t.Fatal("expected owner listing to filter by owner_id")
	}
}

func TestGetByIDQueryHasNoOwnerFilter(t *testing.T) {
	query := strings.ToLower(getVenueByIDQuery)

	if strings.Contains(query, "owner_id =") {
		t.Fatal("public venue lookup must not be owner-scoped")
	}
}
