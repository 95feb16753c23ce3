// Package docs registers the OpenAPI document served under /swagger.
// Generated from the handler annotations; rerun `go generate ./cmd` after
// changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Administrator login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.LoginInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.LoginResult"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/competitions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "competitions"
                ],
                "summary": "List competitions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "scheduled, active or closed",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Competition"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "competitions"
                ],
                "summary": "Create a competition",
                "parameters": [
                    {
                        "description": "Competition",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateCompetitionInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Competition"
                        }
                    }
                }
            }
        },
        "/competitions/{competitionID}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "competitions"
                ],
                "summary": "Delete a competition with its phases and matches",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "competitions"
                ],
                "summary": "Rename a competition, move its status or set the current phase label",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Changes",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateCompetitionInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Competition"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/competitions/{competitionID}/bracket/preview": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "brackets"
                ],
                "summary": "Fill a bracket without saving it",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Bracket",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.BracketInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.BracketPreview"
                        }
                    }
                }
            }
        },
        "/competitions/{competitionID}/matches": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The phase is optional. A match without a phase still counts for the competition table.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Schedule a single match",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Match",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateMatchInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    }
                }
            }
        },
        "/matches/{matchID}/finish": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Finish a live match and freeze its score",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches/{matchID}/score": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Set the score of a live match",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Score",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.ScoreInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches/{matchID}/start": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Move a scheduled match to live",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/phases/{phaseID}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "phases"
                ],
                "summary": "Delete a phase and all of its matches",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Phase ID",
                        "name": "phaseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/phases/{phaseID}/advance": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "brackets"
                ],
                "summary": "Replace the matches of the next elimination phase with the winners of this one",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Finished phase ID",
                        "name": "phaseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Target phase",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.advanceRoundInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Match"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/phases/{phaseID}/bracket": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "brackets"
                ],
                "summary": "Replace the matches of an elimination phase with a filled bracket",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Phase ID",
                        "name": "phaseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Bracket",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.BracketInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Match"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/phases/{phaseID}/fixtures": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "phases"
                ],
                "summary": "Replace every match of a group stage with a fresh round robin",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Phase ID",
                        "name": "phaseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Group rosters",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.GroupFixturesInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Match"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/phases/{phaseID}/groups": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "phases"
                ],
                "summary": "Groups of a phase, derived from its matches, with a table per group",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Phase ID",
                        "name": "phaseID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/services.PhaseGroup"
                            }
                        }
                    }
                }
            }
        },
        "/public/competitions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "public"
                ],
                "summary": "Competitions currently being played",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Competition"
                            }
                        }
                    }
                }
            }
        },
        "/public/competitions/{competitionID}/matches": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "public"
                ],
                "summary": "Matches of a competition",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Match"
                            }
                        }
                    }
                }
            }
        },
        "/public/competitions/{competitionID}/standings": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "public"
                ],
                "summary": "Competition table",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Competition ID",
                        "name": "competitionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Standing"
                            }
                        }
                    }
                }
            }
        },
        "/teams": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "List clubs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Team"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Create a club",
                "parameters": [
                    {
                        "description": "Club",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.TeamInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams/{teamID}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Delete a club",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Admin confirmation",
                        "name": "X-Confirm-Secret",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams/{teamID}/logo": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Upload or replace a club logo",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Logo image",
                        "name": "logo",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "brackets.MatchPair": {
            "type": "object",
            "properties": {
                "home_team_id": {
                    "type": "integer"
                },
                "away_team_id": {
                    "type": "integer"
                }
            }
        },
        "handlers.advanceRoundInput": {
            "type": "object",
            "required": [
                "to_phase_id"
            ],
            "properties": {
                "to_phase_id": {
                    "type": "integer"
                },
                "scheduled_at": {
                    "type": "string"
                }
            }
        },
        "models.Competition": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "scheduled",
                        "active",
                        "closed"
                    ]
                },
                "current_phase": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "teams": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Team"
                    }
                },
                "phases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Phase"
                    }
                }
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "competition_id": {
                    "type": "integer"
                },
                "phase_id": {
                    "type": "integer"
                },
                "home_team_id": {
                    "type": "integer"
                },
                "away_team_id": {
                    "type": "integer"
                },
                "home_score": {
                    "type": "integer"
                },
                "away_score": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "scheduled",
                        "live",
                        "finished"
                    ]
                },
                "scheduled_at": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "home_team": {
                    "$ref": "#/definitions/models.Team"
                },
                "away_team": {
                    "$ref": "#/definitions/models.Team"
                }
            }
        },
        "models.Phase": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "competition_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "group_stage",
                        "elimination"
                    ]
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.Standing": {
            "type": "object",
            "properties": {
                "team_id": {
                    "type": "integer"
                },
                "rank": {
                    "type": "integer"
                },
                "played": {
                    "type": "integer"
                },
                "points": {
                    "type": "integer"
                },
                "wins": {
                    "type": "integer"
                },
                "draws": {
                    "type": "integer"
                },
                "losses": {
                    "type": "integer"
                },
                "goals_for": {
                    "type": "integer"
                },
                "goals_against": {
                    "type": "integer"
                },
                "goal_difference": {
                    "type": "integer"
                },
                "team": {
                    "$ref": "#/definitions/models.Team"
                }
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "logo_url": {
                    "type": "string"
                }
            }
        },
        "services.BracketInput": {
            "type": "object",
            "required": [
                "size",
                "mode"
            ],
            "properties": {
                "size": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "manual",
                        "random",
                        "ranked"
                    ]
                },
                "slots": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "seed": {
                    "type": "integer"
                },
                "source_phase_id": {
                    "type": "integer"
                },
                "scheduled_at": {
                    "type": "string"
                }
            }
        },
        "services.BracketPreview": {
            "type": "object",
            "properties": {
                "size": {
                    "type": "integer"
                },
                "slots": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "pairs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/brackets.MatchPair"
                    }
                }
            }
        },
        "services.CreateCompetitionInput": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "current_phase": {
                    "type": "string"
                }
            }
        },
        "services.CreateMatchInput": {
            "type": "object",
            "required": [
                "home_team_id",
                "away_team_id"
            ],
            "properties": {
                "phase_id": {
                    "type": "integer"
                },
                "home_team_id": {
                    "type": "integer"
                },
                "away_team_id": {
                    "type": "integer"
                },
                "scheduled_at": {
                    "type": "string"
                }
            }
        },
        "services.GroupFixturesInput": {
            "type": "object",
            "required": [
                "groups"
            ],
            "properties": {
                "groups": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "integer"
                        }
                    }
                },
                "legs": {
                    "type": "integer"
                },
                "scheduled_at": {
                    "type": "string"
                }
            }
        },
        "services.LoginInput": {
            "type": "object",
            "required": [
                "password"
            ],
            "properties": {
                "phone": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "services.LoginResult": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                }
            }
        },
        "services.PhaseGroup": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "team_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "standings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Standing"
                    }
                }
            }
        },
        "services.ScoreInput": {
            "type": "object",
            "properties": {
                "home_score": {
                    "type": "integer"
                },
                "away_score": {
                    "type": "integer"
                }
            }
        },
        "services.TeamInput": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "services.UpdateCompetitionInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "scheduled",
                        "active",
                        "closed"
                    ]
                },
                "current_phase": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "League admin API",
	Description:      "Clubs, competitions, group stages, knockout brackets and live scores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
