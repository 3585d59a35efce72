// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "stored_ext", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "raw_extraction", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "anomalies", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_user_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[1]},
			},
			{
				Name:    "document_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[8]},
			},
		},
	}
	// UsageColumns holds the columns for the "usage" table.
	UsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "month", Type: field.TypeString, Size: 7, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UsageTable holds the schema information for the "usage" table.
	UsageTable = &schema.Table{
		Name:       "usage",
		Columns:    UsageColumns,
		PrimaryKey: []*schema.Column{UsageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_users_usage",
				Columns:    []*schema.Column{UsageColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_user_id_month",
				Unique:  true,
				Columns: []*schema.Column{UsageColumns[4], UsageColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "plan", Type: field.TypeString, Default: "free"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		UsageTable,
		UsersTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = UsersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	UsageTable.ForeignKeys[0].RefTable = UsersTable
	UsageTable.Annotation = &entsql.Annotation{
		Table: "usage",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
