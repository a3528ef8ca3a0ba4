package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

type sourceConfig struct {
	Name   string `json:"name" jsonschema:"description=Source name"`
	APIKey string `json:"api_key,omitempty"`
}

type fetchConfig struct {
	Pairs  []string     `json:"pairs" jsonschema:"description=Pairs to fetch"`
	Days   int          `json:"days" jsonschema:"minimum=1"`
	Source sourceConfig `json:"source"`
}

func (suite *UtilsTestSuite) TestGetSchemaFromConfig() {
	schema, err := GetSchemaFromConfig(fetchConfig{})
	suite.Require().NoError(err)

	var result map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &result))

	suite.Contains(result, "$schema")
	suite.NotContains(result, "$ref")
	suite.NotContains(result, "$defs")

	properties := result["properties"].(map[string]any)
	suite.Equal("Pairs to fetch", properties["pairs"].(map[string]any)["description"])
	suite.Equal(float64(1), properties["days"].(map[string]any)["minimum"])

	// nested structs are inlined
	source := properties["source"].(map[string]any)
	suite.Contains(source["properties"], "name")
}

func (suite *UtilsTestSuite) TestGetSchemaFromPointer() {
	schema, err := GetSchemaFromConfig(&fetchConfig{})
	suite.Require().NoError(err)
	suite.Contains(schema, `"pairs"`)
}
