// SPDX-License-Identifier: Apache-2.0

package store

const (
	getAllVocabularyItems = `
		SELECT
			term,
			translation,
			last_modified,
			notes,
			examples
		FROM vocabulary_items
		ORDER BY term;`

	insertVocabularyItem = `
		INSERT INTO vocabulary_items (
			term,
			translation,
			last_modified,
			notes,
			examples
		) VALUES ($1, $2, $3, $4, $5);`

	deleteAllVocabularyItems = `DELETE FROM vocabulary_items;`

	getAllSettings = `
		SELECT
			key,
			value
		FROM settings
		ORDER BY key;`

	insertSetting = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2);`

	deleteAllSettings = `DELETE FROM settings;`

	getMetaValue = `
		SELECT value
		FROM meta
		WHERE key = $1;`

	upsertMetaValue = `
		INSERT INTO meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
