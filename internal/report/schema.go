package report

// Schema is the JSON Schema (Draft 2020-12) for the cursecov JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/cursecov/coverage-report.schema.json",
  "title": "Curse Coverage Report",
  "description": "Output schema for cursecov --verbose --format=json",
  "type": "object",
  "required": ["version", "min_coverage", "passed", "files", "summary"],
  "properties": {
    "version": {
      "type": "string",
      "description": "cursecov version"
    },
    "min_coverage": {
      "type": "number",
      "minimum": 0,
      "maximum": 100,
      "description": "Required minimum total coverage"
    },
    "passed": {
      "type": "boolean",
      "description": "Whether the total coverage meets min_coverage"
    },
    "files": {
      "type": "array",
      "description": "Per-file results sorted by path",
      "items": { "$ref": "#/$defs/FileAnalysis" }
    },
    "summary": { "$ref": "#/$defs/Summary" }
  },
  "$defs": {
    "FileAnalysis": {
      "type": "object",
      "required": ["path", "comments", "curse_comments", "coverage"],
      "properties": {
        "path": { "type": "string" },
        "comments": { "type": "integer", "minimum": 0 },
        "curse_comments": {
          "type": "integer",
          "minimum": 0,
          "description": "Comments containing at least one curse word"
        },
        "coverage": {
          "type": "integer",
          "minimum": 0,
          "maximum": 100,
          "description": "floor(100 * curse_comments / (comments + 0.0001))"
        }
      }
    },
    "Summary": {
      "type": "object",
      "required": ["files", "comments", "curse_comments", "coverage"],
      "properties": {
        "files": { "type": "integer", "minimum": 0 },
        "comments": { "type": "integer", "minimum": 0 },
        "curse_comments": { "type": "integer", "minimum": 0 },
        "coverage": {
          "type": "integer",
          "minimum": 0,
          "maximum": 100,
          "description": "Computed from the summed counts of all files"
        }
      }
    }
  }
}`
