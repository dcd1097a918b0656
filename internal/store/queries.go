package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const watchColumns = `id, region_id, city, specialties, general_practitioner,
	clinic_id, doctor_id, start_date, end_date, time_range, examination,
	auto_book, exclusions, account, active, last_search_at, created_at, updated_at`

const medicineColumns = `id, name, dosage, amount, location, radius_km, max_price,
	min_availability, deactivate_after, exclusions, title, active,
	last_search_at, created_at, updated_at`

// Watch queries.
const (
	baseWatchesSelect = `SELECT ` + watchColumns + ` FROM watches`

	countWatchesSelect = `SELECT COUNT(*) FROM watches`

	queryCreateWatch = `
		INSERT INTO watches (
			id, region_id, city, specialties, general_practitioner,
			clinic_id, doctor_id, start_date, end_date, time_range, examination,
			auto_book, exclusions, account, active, created_at, updated_at
		) VALUES (
			@id, @region_id, @city, @specialties, @general_practitioner,
			@clinic_id, @doctor_id, @start_date, @end_date, @time_range, @examination,
			@auto_book, @exclusions, @account, @active, now(), now()
		)
		RETURNING created_at, updated_at`

	queryGetWatch = baseWatchesSelect + ` WHERE id = $1`

	queryListActiveWatches = baseWatchesSelect + ` WHERE active = true ORDER BY created_at`

	queryUpdateWatch = `
		UPDATE watches SET
			region_id = @region_id,
			city = @city,
			specialties = @specialties,
			general_practitioner = @general_practitioner,
			clinic_id = @clinic_id,
			doctor_id = @doctor_id,
			start_date = @start_date,
			end_date = @end_date,
			time_range = @time_range,
			examination = @examination,
			auto_book = @auto_book,
			exclusions = @exclusions,
			account = @account,
			active = @active,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteWatch = `DELETE FROM watches WHERE id = $1`

	querySetWatchActive = `
		UPDATE watches SET
			active = $2,
			updated_at = now()
		WHERE id = $1`

	queryMarkWatchSearched = `UPDATE watches SET last_search_at = $2 WHERE id = $1`
)

// Medicine search queries.
const (
	baseMedicineSelect = `SELECT ` + medicineColumns + ` FROM medicine_searches`

	countMedicineSelect = `SELECT COUNT(*) FROM medicine_searches`

	queryCreateMedicine = `
		INSERT INTO medicine_searches (
			id, name, dosage, amount, location, radius_km, max_price,
			min_availability, deactivate_after, exclusions, title, active,
			created_at, updated_at
		) VALUES (
			@id, @name, @dosage, @amount, @location, @radius_km, @max_price,
			@min_availability, @deactivate_after, @exclusions, @title, @active,
			now(), now()
		)
		RETURNING created_at, updated_at`

	queryGetMedicine = baseMedicineSelect + ` WHERE id = $1`

	queryListActiveMedicine = baseMedicineSelect + ` WHERE active = true ORDER BY created_at`

	queryUpdateMedicine = `
		UPDATE medicine_searches SET
			name = @name,
			dosage = @dosage,
			amount = @amount,
			location = @location,
			radius_km = @radius_km,
			max_price = @max_price,
			min_availability = @min_availability,
			deactivate_after = @deactivate_after,
			exclusions = @exclusions,
			title = @title,
			active = @active,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteMedicine = `DELETE FROM medicine_searches WHERE id = $1`

	querySetMedicineActive = `
		UPDATE medicine_searches SET
			active = $2,
			updated_at = now()
		WHERE id = $1`

	queryMarkMedicineSearched = `UPDATE medicine_searches SET last_search_at = $2 WHERE id = $1`
)

// Fingerprint queries.
const (
	queryLoadFingerprints = `
		SELECT kind, key, address_key, postal_code, phone,
			clinic_id, doctor_id, date_time, examination
		FROM search_fingerprints
		WHERE search_id = $1
		ORDER BY created_at, key`

	queryInsertFingerprint = `
		INSERT INTO search_fingerprints (
			search_id, key, kind, address_key, postal_code, phone,
			clinic_id, doctor_id, date_time, examination
		) VALUES (
			@search_id, @key, @kind, @address_key, @postal_code, @phone,
			@clinic_id, @doctor_id, @date_time, @examination
		)
		ON CONFLICT (search_id, key) DO NOTHING`

	queryClearFingerprints = `DELETE FROM search_fingerprints WHERE search_id = $1`
)
