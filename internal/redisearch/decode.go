package redisearch

import (
	"github.com/bookshelf/recommender/internal/model"
)

// DecodeRecommendations decodes a search reply of the shape
//
//	[count, id_1, field_list_1, id_2, field_list_2, ...]
//
// where each field list is itself a flat key/value sequence. Only the
// "title" and "score" fields are read; any other returned field is skipped so
// extra RETURN fields stay backward compatible. Count is the engine's total
// match figure and is decoded independently of how many pairs follow.
func DecodeRecommendations(v Value) (*model.Recommendations, error) {
	elems, ok := v.Array()
	if !ok {
		return nil, decodeErrorf("expected array reply, got %s", v.Kind())
	}

	if len(elems) == 0 {
		return nil, decodeErrorf("empty reply, expected leading count")
	}

	count, err := elems[0].Uint64()
	if err != nil {
		return nil, err
	}

	rest := elems[1:]
	if len(rest)%2 != 0 {
		return nil, decodeErrorf("dangling document id without a field list")
	}

	recommendations := make([]model.Recommendation, 0, len(rest)/2)

	for i := 0; i < len(rest); i += 2 {
		id, err := rest[i].AsString()
		if err != nil {
			return nil, err
		}

		fields, ok := rest[i+1].Array()
		if !ok {
			return nil, decodeErrorf("expected field list for %q, got %s", id, rest[i+1].Kind())
		}

		if len(fields)%2 != 0 {
			return nil, decodeErrorf("odd field list for %q: key without value", id)
		}

		rec := model.Recommendation{ID: id}

		for j := 0; j < len(fields); j += 2 {
			key, err := fields[j].AsString()
			if err != nil {
				return nil, err
			}

			switch key {
			case "title":
				if rec.Title, err = fields[j+1].AsString(); err != nil {
					return nil, err
				}
			case "score":
				if rec.Score, err = fields[j+1].Float32(); err != nil {
					return nil, err
				}
			}
		}

		recommendations = append(recommendations, rec)
	}

	return &model.Recommendations{
		Count:           count,
		Recommendations: recommendations,
	}, nil
}
