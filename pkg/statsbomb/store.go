package statsbomb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/richard-senior/pitchplot/internal/logger"
)

///////////////////////////////////////////////////////////////////////////////
/// STORE
///////////////////////////////////////////////////////////////////////////////

var db *sql.DB

// Persistable interface defines methods that persistent objects must implement
type Persistable interface {
	GetTableName() string
	GetPrimaryKey() map[string]any
}

// GetDB returns the shared database connection, opening it on first use
func GetDB() (*sql.DB, error) {
	if db == nil {
		var err error
		db, err = sql.Open("sqlite", Config.DbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err = db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Database initialized successfully", Config.DbPath)
	}
	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}

// CreateTable creates a table for the given persistable object using struct tags
func CreateTable(obj Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}

	tableName := obj.GetTableName()
	createSQL := generateCreateTableSQL(obj, tableName)
	logger.Debug("Creating table with SQL", createSQL)

	if _, err = d.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	for _, query := range generateIndexSQL(obj, tableName) {
		logger.Debug("Creating index with SQL", query)
		if _, err := d.Exec(query); err != nil {
			logger.Warn("Failed to create index", err)
		}
	}
	return nil
}

// generateCreateTableSQL generates CREATE TABLE SQL from struct tags
func generateCreateTableSQL(obj any, tableName string) string {
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	var columns []string
	var primaryKeys []string

	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if !field.IsExported() {
			continue
		}
		dbType := field.Tag.Get("dbtype")
		if dbType == "" {
			continue
		}
		columnName := columnFor(field)
		if field.Tag.Get("primary") == "true" {
			primaryKeys = append(primaryKeys, columnName)
		}
		columns = append(columns, fmt.Sprintf("%s %s", columnName, dbType))
	}

	if len(primaryKeys) > 0 {
		columns = append(columns, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(primaryKeys, ", ")))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(columns, ", "))
}

// generateIndexSQL generates index creation SQL from struct tags
func generateIndexSQL(obj any, tableName string) []string {
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	var indexSQL []string
	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if field.Tag.Get("index") == "" {
			continue
		}
		columnName := columnFor(field)
		indexName := fmt.Sprintf("idx_%s_%s", tableName, columnName)
		indexSQL = append(indexSQL,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName, tableName, columnName))
	}
	return indexSQL
}

func columnFor(field reflect.StructField) string {
	if name := field.Tag.Get("column"); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}

// Save persists the object to the database (INSERT or UPDATE)
func Save(obj Persistable) error {
	exists, err := Exists(obj)
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if exists {
		return update(obj)
	}
	return insert(obj)
}

func insert(obj Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}
	tableName := obj.GetTableName()
	columns, placeholders, values := getInsertData(obj)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	if _, err = d.Exec(query, values...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", tableName, err)
	}
	return nil
}

func update(obj Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}
	tableName := obj.GetTableName()
	setPairs, values := getUpdateData(obj)
	whereClause, whereValues := buildWhereClause(obj.GetPrimaryKey())
	values = append(values, whereValues...)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		tableName, strings.Join(setPairs, ", "), whereClause)
	if _, err = d.Exec(query, values...); err != nil {
		return fmt.Errorf("failed to update %s: %w", tableName, err)
	}
	return nil
}

// Exists checks if the object exists in the database
func Exists(obj Persistable) (bool, error) {
	d, err := GetDB()
	if err != nil {
		return false, err
	}
	tableName := obj.GetTableName()
	whereClause, values := buildWhereClause(obj.GetPrimaryKey())
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", tableName, whereClause)
	var count int
	if err = d.QueryRow(query, values...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", tableName, err)
	}
	return count > 0, nil
}

/**
* BulkSave inserts many objects in one transaction, replacing any
* existing rows with the same primary key. Event loads are repeatable
* so replace-on-conflict keeps the store idempotent.
 */
func BulkSave(objects []Persistable) error {
	if len(objects) == 0 {
		return nil
	}
	d, err := GetDB()
	if err != nil {
		return err
	}
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tableName := objects[0].GetTableName()
	columns, placeholders, _ := getInsertData(objects[0])
	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, obj := range objects {
		_, _, values := getInsertData(obj)
		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", tableName, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindWhere executes a custom WHERE query returning hydrated objects
func FindWhere(obj Persistable, whereClause string, args ...any) ([]any, error) {
	d, err := GetDB()
	if err != nil {
		return nil, err
	}
	tableName := obj.GetTableName()
	columns, _ := getSelectData(obj)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(columns, ", "), tableName, whereClause)
	logger.Debug("FindWhere SQL", query)

	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	var results []any
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}
	for rows.Next() {
		newObj := reflect.New(objType).Interface()
		_, destinations := getSelectData(newObj)
		if err := rows.Scan(destinations...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", tableName, err)
		}
		results = append(results, newObj)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from %s: %w", tableName, err)
	}
	return results, nil
}

// getInsertData extracts column names, placeholders, and values for INSERT
func getInsertData(obj any) ([]string, []string, []any) {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)
	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var columns []string
	var placeholders []string
	var values []any
	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if !field.IsExported() || field.Tag.Get("dbtype") == "" {
			continue
		}
		columns = append(columns, columnFor(field))
		placeholders = append(placeholders, "?")
		values = append(values, objValue.Field(i).Interface())
	}
	return columns, placeholders, values
}

// getUpdateData extracts SET pairs and values for UPDATE, skipping the
// primary key
func getUpdateData(obj any) ([]string, []any) {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)
	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var setPairs []string
	var values []any
	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if !field.IsExported() || field.Tag.Get("dbtype") == "" {
			continue
		}
		if field.Tag.Get("primary") == "true" {
			continue
		}
		setPairs = append(setPairs, fmt.Sprintf("%s = ?", columnFor(field)))
		values = append(values, objValue.Field(i).Interface())
	}
	return setPairs, values
}

// getSelectData extracts column names and scan destinations for SELECT
func getSelectData(obj any) ([]string, []any) {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)
	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var columns []string
	var destinations []any
	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if !field.IsExported() || field.Tag.Get("dbtype") == "" {
			continue
		}
		columns = append(columns, columnFor(field))
		destinations = append(destinations, objValue.Field(i).Addr().Interface())
	}
	return columns, destinations
}

// buildWhereClause builds a WHERE clause from a primary key map
func buildWhereClause(primaryKey map[string]any) (string, []any) {
	var conditions []string
	var values []any
	for column, value := range primaryKey {
		conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		values = append(values, value)
	}
	return strings.Join(conditions, " AND "), values
}

///////////////////////////////////////////////////////////////////////////////
/// EVENT RECORD
///////////////////////////////////////////////////////////////////////////////

/**
* EventRecord is the database shape of one flattened event. The columns
* a query would filter or join on are real columns with indexes, the
* long tail of per-type columns lives in the extra json column.
 */
type EventRecord struct {
	ID               string  `column:"id" dbtype:"TEXT" primary:"true"`
	MatchID          int64   `column:"match_id" dbtype:"INTEGER" index:"true"`
	EventIndex       int64   `column:"event_index" dbtype:"INTEGER"`
	Period           int64   `column:"period" dbtype:"INTEGER"`
	Minute           int64   `column:"minute" dbtype:"INTEGER"`
	Second           int64   `column:"second" dbtype:"INTEGER"`
	Possession       int64   `column:"possession" dbtype:"INTEGER"`
	PossessionTeamID int64   `column:"possession_team_id" dbtype:"INTEGER"`
	TypeID           int64   `column:"type_id" dbtype:"INTEGER"`
	TypeName         string  `column:"type_name" dbtype:"TEXT" index:"true"`
	OutcomeName      string  `column:"outcome_name" dbtype:"TEXT"`
	TeamID           int64   `column:"team_id" dbtype:"INTEGER" index:"true"`
	TeamName         string  `column:"team_name" dbtype:"TEXT"`
	PlayerID         int64   `column:"player_id" dbtype:"INTEGER" index:"true"`
	PlayerName       string  `column:"player_name" dbtype:"TEXT"`
	PositionName     string  `column:"position_name" dbtype:"TEXT"`
	Duration         float64 `column:"duration" dbtype:"REAL"`
	X                float64 `column:"x" dbtype:"REAL"`
	Y                float64 `column:"y" dbtype:"REAL"`
	EndX             float64 `column:"end_x" dbtype:"REAL"`
	EndY             float64 `column:"end_y" dbtype:"REAL"`
	Extra            string  `column:"extra" dbtype:"TEXT"`
}

func (e *EventRecord) GetTableName() string { return "event" }

func (e *EventRecord) GetPrimaryKey() map[string]any {
	return map[string]any{"id": e.ID}
}

// the row keys promoted to real columns, everything else goes to extra
var promotedEventColumns = map[string]bool{
	"id": true, "match_id": true, "index": true, "period": true, "minute": true,
	"second": true, "possession": true, "possession_team_id": true, "type_id": true,
	"type_name": true, "outcome_name": true, "team_id": true, "team_name": true,
	"player_id": true, "player_name": true, "position_name": true, "duration": true,
	"x": true, "y": true,
	"pass_end_x": true, "pass_end_y": true, "carry_end_x": true, "carry_end_y": true,
	"shot_end_x": true, "shot_end_y": true, "goalkeeper_end_x": true, "goalkeeper_end_y": true,
}

/**
* NewEventRecord converts a flattened event row into its database
* shape. Whichever end location the event type carries is promoted to
* the end_x and end_y columns so pass, carry, shot and goalkeeper
* events can share one spatial query.
 */
func NewEventRecord(row map[string]any) (*EventRecord, error) {
	id, _ := row["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("event row has no id")
	}
	rec := &EventRecord{
		ID:               id,
		MatchID:          rowInt(row, "match_id"),
		EventIndex:       rowInt(row, "index"),
		Period:           rowInt(row, "period"),
		Minute:           rowInt(row, "minute"),
		Second:           rowInt(row, "second"),
		Possession:       rowInt(row, "possession"),
		PossessionTeamID: rowInt(row, "possession_team_id"),
		TypeID:           rowInt(row, "type_id"),
		TypeName:         rowString(row, "type_name"),
		OutcomeName:      rowString(row, "outcome_name"),
		TeamID:           rowInt(row, "team_id"),
		TeamName:         rowString(row, "team_name"),
		PlayerID:         rowInt(row, "player_id"),
		PlayerName:       rowString(row, "player_name"),
		PositionName:     rowString(row, "position_name"),
		Duration:         rowFloat(row, "duration"),
		X:                rowFloat(row, "x"),
		Y:                rowFloat(row, "y"),
	}
	rec.EndX, rec.EndY = endLocation(row)

	extra := make(map[string]any)
	for k, v := range row {
		if !promotedEventColumns[k] {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		data, err := json.Marshal(extra)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal extra columns: %w", err)
		}
		rec.Extra = string(data)
	}
	return rec, nil
}

func endLocation(row map[string]any) (float64, float64) {
	for _, prefix := range []string{"pass_end", "carry_end", "shot_end", "goalkeeper_end"} {
		x, okX := row[prefix+"_x"]
		y, okY := row[prefix+"_y"]
		if okX && okY {
			xf, _ := cellFloat(x)
			yf, _ := cellFloat(y)
			return xf, yf
		}
	}
	return math.NaN(), math.NaN()
}

func rowInt(row map[string]any, key string) int64 {
	if f, ok := cellFloat(row[key]); ok {
		return int64(f)
	}
	return 0
}

func rowFloat(row map[string]any, key string) float64 {
	if f, ok := cellFloat(row[key]); ok {
		return f
	}
	return math.NaN()
}

func rowString(row map[string]any, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}

/**
* StoreEvents writes a match's flattened events into the database,
* creating the table on first use
 */
func StoreEvents(data *EventData) error {
	if data == nil || data.Events == nil {
		return fmt.Errorf("no event data to store")
	}
	if err := CreateTable(&EventRecord{}); err != nil {
		return err
	}
	records := make([]Persistable, 0, data.Events.NumRows())
	for _, row := range data.Events.Rows {
		rec, err := NewEventRecord(row)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	if err := BulkSave(records); err != nil {
		return err
	}
	logger.Info("Stored events", len(records))
	return nil
}

// LoadEvents retrieves the stored events for one match ordered by the
// match clock
func LoadEvents(matchID int) ([]*EventRecord, error) {
	results, err := FindWhere(&EventRecord{}, "match_id = ? ORDER BY event_index", matchID)
	if err != nil {
		return nil, err
	}
	records := make([]*EventRecord, 0, len(results))
	for _, r := range results {
		rec, ok := r.(*EventRecord)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", r)
		}
		records = append(records, rec)
	}
	return records, nil
}
