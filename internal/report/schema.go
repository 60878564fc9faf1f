package report

// Schema is the JSON Schema (Draft 2020-12) for the check-run JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/stride/check-report.schema.json",
  "title": "Stride Check Report",
  "description": "Output schema for stride check --format=json",
  "type": "object",
  "required": ["version", "summary", "results"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "summary": { "$ref": "#/$defs/Summary" },
    "results": {
      "type": "array",
      "items": { "$ref": "#/$defs/Result" }
    }
  },
  "$defs": {
    "Summary": {
      "type": "object",
      "required": ["total", "passed", "failed"],
      "properties": {
        "total": {
          "type": "integer",
          "minimum": 0,
          "description": "Number of cases run"
        },
        "passed": {
          "type": "integer",
          "minimum": 0,
          "description": "Number of cases whose assertion held"
        },
        "failed": {
          "type": "integer",
          "minimum": 0,
          "description": "Number of cases whose assertion did not hold"
        }
      }
    },
    "Result": {
      "type": "object",
      "required": ["name", "op", "passed", "got", "want"],
      "properties": {
        "name": {
          "type": "string",
          "description": "Case name from the suite"
        },
        "op": {
          "type": "string",
          "description": "Operation the case exercised"
        },
        "passed": {
          "type": "boolean",
          "description": "Whether got equals want"
        },
        "got": {
          "type": "string",
          "description": "Rendered actual value (or error text)"
        },
        "want": {
          "type": "string",
          "description": "Rendered expected value"
        }
      }
    }
  }
}`
