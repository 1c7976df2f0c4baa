package recipes

import (
	"encoding/json"
	"errors"
	"fmt"

	"recipes-app-api/core/domain"
)

// recipeRecord is the wire shape of one recipe. Pointers distinguish a
// missing or null member from an empty string. The identity member is
// configurable, so it is read separately.
type recipeRecord struct {
	ID            *string `json:"-"`
	Name          *string `json:"name"`
	Cuisine       *string `json:"cuisine"`
	PhotoURLSmall *string `json:"photo_url_small"`
	PhotoURLLarge *string `json:"photo_url_large"`
	YouTubeURL    *string `json:"youtube_url"`
	SourceURL     *string `json:"source_url"`
}

// decodeCollection decodes {"<key>": [ ... ]} into a collection, all or
// nothing. Each record's id is read from the idKey member.
func decodeCollection(body []byte, key, idKey string, extractor domain.VideoIDExtractor) (domain.RecipeCollection, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("missing %q member", key)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("member %q: %w", key, err)
	}
	if items == nil {
		return nil, fmt.Errorf("member %q is null", key)
	}

	out := make(domain.RecipeCollection, 0, len(items))
	for i, item := range items {
		rec, err := decodeRecord(item, idKey)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		recipe, err := rec.toRecipe(idKey, extractor)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, recipe)
	}
	return out, nil
}

func decodeRecord(item json.RawMessage, idKey string) (recipeRecord, error) {
	var rec recipeRecord
	if err := json.Unmarshal(item, &rec); err != nil {
		return rec, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(item, &members); err != nil {
		return rec, err
	}
	if rawID, ok := members[idKey]; ok {
		if err := json.Unmarshal(rawID, &rec.ID); err != nil {
			return rec, fmt.Errorf("member %q: %w", idKey, err)
		}
	}
	return rec, nil
}

func (rec recipeRecord) toRecipe(idKey string, extractor domain.VideoIDExtractor) (domain.Recipe, error) {
	switch {
	case rec.ID == nil || *rec.ID == "":
		return domain.Recipe{}, fmt.Errorf("missing %s", idKey)
	case rec.Name == nil || *rec.Name == "":
		return domain.Recipe{}, errors.New("missing name")
	case rec.Cuisine == nil:
		return domain.Recipe{}, errors.New("missing cuisine")
	}

	return domain.Recipe{
		ID:             *rec.ID,
		Name:           *rec.Name,
		Cuisine:        *rec.Cuisine,
		PhotoURLSmall:  rec.PhotoURLSmall,
		PhotoURLLarge:  rec.PhotoURLLarge,
		YouTubeURL:     rec.YouTubeURL,
		SourceURL:      rec.SourceURL,
		YouTubeVideoID: domain.DeriveVideoID(extractor, rec.YouTubeURL),
	}, nil
}

// EncodeCollection writes a collection back to the wire shape under key,
// with each id in the idKey member. Absent optional fields are emitted as null.
func EncodeCollection(recipes domain.RecipeCollection, key, idKey string) ([]byte, error) {
	records := make([]map[string]interface{}, 0, len(recipes))
	for _, r := range recipes {
		records = append(records, map[string]interface{}{
			idKey:             r.ID,
			"name":            r.Name,
			"cuisine":         r.Cuisine,
			"photo_url_small": r.PhotoURLSmall,
			"photo_url_large": r.PhotoURLLarge,
			"youtube_url":     r.YouTubeURL,
			"source_url":      r.SourceURL,
		})
	}
	return json.Marshal(map[string]interface{}{key: records})
}
