package pgtest

import "time"

// InsertProvince stores a province and returns its id.
func (d *Database) InsertProvince(name, customsCode string) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO hmpaquetesapp_provincia (nombre, codigo_aduana) VALUES (?, ?) RETURNING id",
		name, customsCode,
	).Scan(&id).Error
	return id, err
}

// InsertMunicipality stores a municipality of provinceID and returns its id.
func (d *Database) InsertMunicipality(name, customsCode string, provinceID int64) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO hmpaquetesapp_municipio (nombre, codigo_aduana, provincia_id) VALUES (?, ?, ?) RETURNING id",
		name, customsCode, provinceID,
	).Scan(&id).Error
	return id, err
}

// InsertLocation stores a warehouse and returns its id.
func (d *Database) InsertLocation(name string, provinceID int64, central bool) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO hmpaquetesapp_locacion (nombre, provincia_id, es_almacen_central) VALUES (?, ?, ?) RETURNING id",
		name, provinceID, central,
	).Scan(&id).Error
	return id, err
}

// InsertIntake stores an intake document and returns its id.
func (d *Database) InsertIntake(originID int64, createdAt time.Time) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO hmpaquetesapp_entradarecibida (locacion_origen_id, fecha_creacion, usuario) VALUES (?, ?, 'test') RETURNING id",
		originID, createdAt,
	).Scan(&id).Error
	return id, err
}

// InsertTransfer stores a transfer document and returns its id.
func (d *Database) InsertTransfer(originID, destinationID int64, createdAt time.Time) (int64, error) {
	var id int64
	err := d.DB.Raw(
		`INSERT INTO hmpaquetesapp_transferenciaalmacen (locacion_origen_id, locacion_destino_id, fecha_creacion, usuario)
		 VALUES (?, ?, ?, 'test') RETURNING id`,
		originID, destinationID, createdAt,
	).Scan(&id).Error
	return id, err
}

// InsertDispatch stores a messenger dispatch and returns its id.
func (d *Database) InsertDispatch(originID, provinceID int64, messengerID *int64, createdAt time.Time) (int64, error) {
	var id int64
	err := d.DB.Raw(
		`INSERT INTO hmpaquetesapp_despachomensajero (locacion_origen_id, provincia_id, mensajero_id, fecha_creacion, usuario)
		 VALUES (?, ?, ?, ?, 'test') RETURNING id`,
		originID, provinceID, messengerID, createdAt,
	).Scan(&id).Error
	return id, err
}

// InsertService stores a catalogue service and returns its id.
func (d *Database) InsertService(name string, active bool) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO cotizacion_app_servicio (nombre, descripcion, activo) VALUES (?, ?, ?) RETURNING id",
		name, name+" description", active,
	).Scan(&id).Error
	return id, err
}

// InsertShipment stores a shipment with the given code and status and returns its id.
func (d *Database) InsertShipment(code, status string, kg float64, location *string) (int64, error) {
	var id int64
	err := d.DB.Raw(
		"INSERT INTO hmpaquetesapp_envio (no_envio, peso, estado, locacion) VALUES (?, ?, ?, ?) RETURNING id",
		code, kg, status, location,
	).Scan(&id).Error
	return id, err
}
