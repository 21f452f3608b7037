// Package docs registra no swag o documento OpenAPI servido em /swagger.
// Mantido à mão no formato do swag; as anotações dos handlers descrevem as mesmas rotas.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Lista artigos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ArticleResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Cria artigo",
                "parameters": [
                    {"description": "Artigo", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ArticleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Busca artigo",
                "parameters": [
                    {"type": "integer", "description": "ID do artigo", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Atualiza artigo",
                "parameters": [
                    {"type": "integer", "description": "ID do artigo", "name": "id", "in": "path", "required": true},
                    {"description": "Artigo", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ArticleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleUpdatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Remove artigo",
                "parameters": [
                    {"type": "integer", "description": "ID do artigo", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Lista históricos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Cria registro de histórico",
                "parameters": [
                    {"description": "Registro", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateHistoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/history/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Remove histórico",
                "parameters": [
                    {"type": "integer", "description": "ID do histórico", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/history/{token}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Lista históricos por token",
                "parameters": [
                    {"type": "string", "description": "Token do Firebase", "name": "token", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryResponse"}}}
                }
            }
        },
        "/history/{token}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Busca histórico por token e id",
                "parameters": [
                    {"type": "string", "description": "Token do Firebase", "name": "token", "in": "path", "required": true},
                    {"type": "integer", "description": "ID do histórico", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista usuários",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Cria usuário",
                "parameters": [
                    {"type": "string", "description": "Nome completo", "name": "namaLengkap", "in": "formData", "required": true},
                    {"type": "string", "description": "Laki-laki ou Perempuan", "name": "jenisKelamin", "in": "formData", "required": true},
                    {"type": "string", "description": "Telefone", "name": "nomorHp", "in": "formData"},
                    {"type": "string", "description": "Endereço", "name": "alamat", "in": "formData"},
                    {"type": "string", "description": "Token do Firebase", "name": "tokenFirebase", "in": "formData"},
                    {"type": "file", "description": "Foto de perfil", "name": "fotoProfile", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserPhotoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Remove usuário por id",
                "parameters": [
                    {"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{token}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Busca usuário por token",
                "parameters": [
                    {"type": "string", "description": "Token do Firebase", "name": "token", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Atualiza usuário por token",
                "parameters": [
                    {"type": "string", "description": "Token do Firebase", "name": "token", "in": "path", "required": true},
                    {"type": "string", "description": "Nome completo", "name": "namaLengkap", "in": "formData", "required": true},
                    {"type": "string", "description": "Laki-laki ou Perempuan", "name": "jenisKelamin", "in": "formData", "required": true},
                    {"type": "string", "description": "Telefone", "name": "nomorHp", "in": "formData"},
                    {"type": "string", "description": "Endereço", "name": "alamat", "in": "formData"},
                    {"type": "file", "description": "Nova foto de perfil", "name": "fotoProfile", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserPhotoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ArticleRequest": {
            "type": "object",
            "required": ["article", "judul"],
            "properties": {
                "article": {"type": "string"},
                "foto": {"type": "string"},
                "judul": {"type": "string"}
            }
        },
        "dto.ArticleResponse": {
            "type": "object",
            "properties": {
                "article": {"type": "string"},
                "foto": {"type": "string"},
                "id": {"type": "integer"},
                "judul": {"type": "string"}
            }
        },
        "dto.ArticleUpdatedResponse": {
            "type": "object",
            "properties": {
                "article": {"$ref": "#/definitions/dto.ArticleResponse"},
                "message": {"type": "string"}
            }
        },
        "dto.CreateHistoryRequest": {
            "type": "object",
            "required": ["akurasi", "deskripsi", "nama_penyakit", "tokenFirebase"],
            "properties": {
                "akurasi": {"type": "string"},
                "deskripsi": {"type": "string"},
                "faktor_risiko": {"type": "string"},
                "gambar": {"type": "string"},
                "gejala": {"type": "string"},
                "nama_penyakit": {"type": "string", "maxLength": 100},
                "penanganan": {"type": "string"},
                "pencegahan": {"type": "string"},
                "penyebab": {"type": "string"},
                "tokenFirebase": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationError"}},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "akurasi": {"type": "string"},
                "deskripsi": {"type": "string"},
                "faktor_risiko": {"type": "string"},
                "gambar": {"type": "string"},
                "gejala": {"type": "string"},
                "id_history": {"type": "integer"},
                "nama_penyakit": {"type": "string"},
                "penanganan": {"type": "string"},
                "pencegahan": {"type": "string"},
                "penyebab": {"type": "string"},
                "tanggal": {"type": "string"},
                "tokenFirebase": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.UserPhotoResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "publicUrl": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "alamat": {"type": "string"},
                "fotoProfile": {"type": "string"},
                "idUser": {"type": "integer"},
                "jenisKelamin": {"type": "string"},
                "namaLengkap": {"type": "string"},
                "nomorHp": {"type": "string"},
                "tokenFirebase": {"type": "string"}
            }
        },
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "tag": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo permite ajustar host e base path em tempo de execução
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cofflyze API",
	Description:      "Usuários, histórico de diagnósticos e artigos do aplicativo Cofflyze.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
