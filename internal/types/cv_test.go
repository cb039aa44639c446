package types

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FullRecord(t *testing.T) {
	value, err := data.Load(filepath.Join("..", "..", "testdata", "cv", "full.yaml"))
	require.NoError(t, err)

	record, err := Decode(value)
	require.NoError(t, err)

	require.NotNil(t, record.PersonalInfo)
	assert.Equal(t, "José Luis García", record.PersonalInfo.FullName())
	require.NotNil(t, record.PersonalInfo.Location)
	assert.Equal(t, "São Paulo", record.PersonalInfo.Location.City)

	require.Len(t, record.WorkExperience, 2)
	assert.True(t, record.WorkExperience[0].Current)
	assert.Equal(t, Date("2021-03"), record.WorkExperience[0].StartDate)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kafka"}, record.WorkExperience[0].Technologies)

	require.Len(t, record.Education, 1)
	require.NotNil(t, record.Education[0].GPA)
	assert.InDelta(t, 3.8, *record.Education[0].GPA, 1e-9)

	require.Len(t, record.Skills, 4)
	assert.Equal(t, Skill{Name: "Go", Level: "Expert", Category: "Languages"}, record.Skills[0])
	assert.Equal(t, Skill{Name: "Docker"}, record.Skills[3])

	require.Len(t, record.Languages, 3)
	assert.True(t, record.Languages[0].Native)
}

func TestDecode_Nil(t *testing.T) {
	record, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, record.PersonalInfo)
	assert.Empty(t, record.WorkExperience)
}

func TestDecode_WrongShape(t *testing.T) {
	_, err := Decode(map[string]any{"workExperience": "not a list"})
	assert.Error(t, err)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		info *PersonalInfo
		want string
	}{
		{"all parts", &PersonalInfo{FirstName: "Ada", MiddleName: "King", LastName: "Lovelace"}, "Ada King Lovelace"},
		{"no middle", &PersonalInfo{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"last only", &PersonalInfo{LastName: "Lovelace"}, "Lovelace"},
		{"empty", &PersonalInfo{}, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.FullName())
		})
	}
}

func TestCompanyLink_AliasOrder(t *testing.T) {
	assert.Equal(t, "", WorkExperience{}.CompanyLink())
	assert.Equal(t, "https://h.example", WorkExperience{Homepage: "https://h.example"}.CompanyLink())
	assert.Equal(t, "https://w.example", WorkExperience{
		Website:  "https://w.example",
		URL:      "https://u.example",
		Homepage: "https://h.example",
	}.CompanyLink())
	assert.Equal(t, "https://snake.example", WorkExperience{
		CompanyURLSnake: "https://snake.example",
		Link:            "https://l.example",
	}.CompanyLink())

	var job WorkExperience
	require.NoError(t, json.Unmarshal([]byte(`{"company_url":"https://a.example","link":"https://b.example"}`), &job))
	assert.Equal(t, "https://a.example", job.CompanyLink())
}

func TestSkill_UnmarshalJSON(t *testing.T) {
	var skills []Skill
	err := json.Unmarshal([]byte(`["Docker", {"name":"Go","level":"Expert","category":"Languages"}]`), &skills)
	require.NoError(t, err)
	assert.Equal(t, []Skill{
		{Name: "Docker"},
		{Name: "Go", Level: "Expert", Category: "Languages"},
	}, skills)

	var bad Skill
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestSkill_Label(t *testing.T) {
	assert.Equal(t, "Go (Expert)", Skill{Name: "Go", Level: "Expert"}.Label())
	assert.Equal(t, "Go", Skill{Name: "Go"}.Label())
	assert.Equal(t, "", Skill{Level: "Expert"}.Label())
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Date
	}{
		{`"2024-01"`, "2024-01"},
		{`2024`, "2024"},
		{`null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
