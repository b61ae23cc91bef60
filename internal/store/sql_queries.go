// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// noteColumns is the canonical column order for all note SELECTs; row
// scanning in repository_note.go depends on it.
var noteColumns = []string{
	"id",
	"title",
	"content",
	"tags",
	"category",
	"is_encrypted",
	"encrypted",
	"salt",
	"iv",
	"created_at",
	"updated_at",
}

// buildInsertNoteQuery builds the parameterised INSERT for a note row.
func buildInsertNoteQuery(row noteRow) (string, []any, error) {
	return sq.Insert("notes").
		Columns(noteColumns...).
		Values(
			row.id,
			row.title,
			row.content,
			row.tags,
			row.category,
			row.isEncrypted,
			row.encrypted,
			row.salt,
			row.iv,
			row.createdAt,
			row.updatedAt,
		).
		ToSql()
}

// buildSelectNoteQuery builds the SELECT for a single note by ID.
func buildSelectNoteQuery(id string) (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectNotesQuery builds the filtered list SELECT, newest first.
// Tags are stored as a JSON array string, so the tag filter matches the
// quoted tag as a substring.
func buildSelectNotesQuery(filter NoteFilter) (string, []any, error) {
	builder := sq.Select(noteColumns...).
		From("notes").
		OrderBy("updated_at DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Tag != "" {
		builder = builder.Where(sq.Like{"tags": `%"` + filter.Tag + `"%`})
	}

	return builder.ToSql()
}

// buildUpdateNoteQuery builds the full-row UPDATE for a note.
func buildUpdateNoteQuery(row noteRow) (string, []any, error) {
	return sq.Update("notes").
		Set("title", row.title).
		Set("content", row.content).
		Set("tags", row.tags).
		Set("category", row.category).
		Set("is_encrypted", row.isEncrypted).
		Set("encrypted", row.encrypted).
		Set("salt", row.salt).
		Set("iv", row.iv).
		Set("updated_at", row.updatedAt).
		Where(sq.Eq{"id": row.id}).
		ToSql()
}

// buildDeleteNoteQuery builds the DELETE for a single note by ID.
func buildDeleteNoteQuery(id string) (string, []any, error) {
	return sq.Delete("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
}
