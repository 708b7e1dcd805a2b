package template

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "Valid multi-stage file",
			content: "FROM ubuntu:24.04 AS base\n" +
				"FROM base AS tools\n" +
				"FROM base AS final\n",
			want: nil,
		},
		{
			name:    "Missing everything",
			content: "RUN echo hi\n",
			want: []string{
				"Missing FROM instruction",
				"Missing final layer",
				"Expected multiple FROM instructions for multi-stage build",
			},
		},
		{
			name:    "Single stage with final marker missing",
			content: "FROM alpine:3.20\nRUN apk add --no-cache curl\n",
			want: []string{
				"Missing final layer",
				"Expected multiple FROM instructions for multi-stage build",
			},
		},
		{
			name: "Two stages but no final marker",
			content: "FROM ubuntu:24.04 AS base\n" +
				"FROM base AS tools\n",
			want: []string{"Missing final layer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v; want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("issue[%d] = %q; want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
