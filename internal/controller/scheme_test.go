package controller

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSchemeUpdateRequestFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]interface{}
	}{
		{
			name: "only provided field mapped",
			body: `{"physical_progress": 55.5}`,
			want: map[string]interface{}{"physical_progress": 55.5},
		},
		{
			name: "explicit zero kept",
			body: `{"funds_released": 0}`,
			want: map[string]interface{}{"funds_released": 0.0},
		},
		{
			name: "empty body maps nothing",
			body: `{}`,
			want: map[string]interface{}{},
		},
		{
			name: "several fields, omitted ones absent",
			body: `{"name_of_scheme": "Canal Rehabilitation", "labour_deployed": 12, "remarks": ""}`,
			want: map[string]interface{}{
				"name_of_scheme":  "Canal Rehabilitation",
				"labour_deployed": 12,
				"remarks":         "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req schemeUpdateRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatal(err)
			}
			got := req.fields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentUpdateRequestFields(t *testing.T) {
	var req componentUpdateRequest
	body := `{"component_name": "Boundary wall", "before_images": ["a.jpg"]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	// image lists go through row replacement, not the column map
	want := map[string]interface{}{"component_name": "Boundary wall"}
	if got := req.fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("fields() = %v, want %v", got, want)
	}
	if req.BeforeImages == nil || req.AfterImages != nil {
		t.Errorf("BeforeImages = %v, AfterImages = %v, want present/absent", req.BeforeImages, req.AfterImages)
	}
}
