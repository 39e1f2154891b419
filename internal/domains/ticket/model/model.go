package model

import "drivent/shared/model"

const (
	TableName           = "tickets"
	EntityName          = "ticket"
	EnrollmentTableName = "enrollments"
	EnrollmentEntity    = "enrollment"
	TicketTypeTableName = "ticket_types"

	FieldID           = "id"
	FieldEnrollmentID = "enrollment_id"
	FieldTicketTypeID = "ticket_type_id"
	FieldStatus       = "status"
	FieldUserID       = "user_id"
)

const (
	StatusReserved = "RESERVED"
	StatusPaid     = "PAID"
)

// Ticket is read joined with its enrollment and ticket type. Only the
// tickets columns are owned by this table.
type Ticket struct {
	ID            int64  `db:"id"`
	EnrollmentID  int64  `db:"enrollment_id"`
	TicketTypeID  int64  `db:"ticket_type_id"`
	Status        string `db:"status"`
	UserID        int64  `db:"user_id"        table:"enrollments"`
	IsRemote      bool   `db:"is_remote"      table:"ticket_types"`
	IncludesHotel bool   `db:"includes_hotel" table:"ticket_types"`
	model.Metadata
}

func (Ticket) GetJoinQuery() string {
	return "JOIN enrollments ON enrollments.id = tickets.enrollment_id " +
		"JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id"
}

func (t Ticket) IsPaid() bool {
	return t.Status == StatusPaid
}

type Enrollment struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	model.Metadata
}
