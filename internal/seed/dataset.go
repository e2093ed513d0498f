package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type TeamDef struct {
	Name        string `yaml:"name"`
	PlayerNames string `yaml:"player_names"`
	Score       int    `yaml:"score"`
}

type GameDef struct {
	Teams []TeamDef `yaml:"teams"`
}

// Dataset is an ordered list of games to create, each with its teams.
type Dataset struct {
	Games []GameDef `yaml:"games"`
}

func (d Dataset) TeamCount() int {
	total := 0
	for _, game := range d.Games {
		total += len(game.Teams)
	}
	return total
}

// Default returns the built-in dataset of three games with two teams each.
func Default() Dataset {
	return Dataset{Games: []GameDef{
		{Teams: []TeamDef{
			{Name: "Bulls", PlayerNames: "Danny, Benn", Score: 812},
			{Name: "Spurs", PlayerNames: "Logan, Ben", Score: 56},
		}},
		{Teams: []TeamDef{
			{Name: "Celtics", PlayerNames: "Brian, Paul", Score: 34},
			{Name: "Spurs", PlayerNames: "Rachel, Helen", Score: 10000},
		}},
		{Teams: []TeamDef{
			{Name: "Lakers", PlayerNames: "Nick, Liz", Score: 92},
			{Name: "Knicks", PlayerNames: "Bryant, Dave", Score: 786},
		}},
	}}
}

// Load reads a dataset from a .yaml, .yml or .csv file.
func Load(path string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAML(path)
	case ".csv":
		return readCSV(path)
	default:
		return Dataset{}, fmt.Errorf("unsupported dataset file %q", path)
	}
}

func readYAML(path string) (Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var data Dataset
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}

// readCSV expects a header row followed by game,name,player_names,score rows.
// Rows sharing a game key form one game, in order of first appearance.
func readCSV(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, err
	}

	var data Dataset
	index := map[string]int{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 4 {
			return Dataset{}, fmt.Errorf("%s line %d: expected 4 fields, got %d", path, i+1, len(row))
		}
		key := strings.TrimSpace(row[0])
		score, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return Dataset{}, fmt.Errorf("%s line %d: invalid score %q", path, i+1, row[3])
		}
		pos, ok := index[key]
		if !ok {
			pos = len(data.Games)
			index[key] = pos
			data.Games = append(data.Games, GameDef{})
		}
		data.Games[pos].Teams = append(data.Games[pos].Teams, TeamDef{
			Name:        strings.TrimSpace(row[1]),
			PlayerNames: strings.TrimSpace(row[2]),
			Score:       score,
		})
	}
	return data, nil
}
