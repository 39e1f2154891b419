package model

import "drivent/shared/model"

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldToken  = "token"
)

type Session struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Token  string `db:"token"`
	model.Metadata
}
