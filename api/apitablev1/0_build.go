package apitablev1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/dyngrid/service"
)

func BuildV1Table(v1 *box.R, s service.Servicer) *box.R {

	tables := v1.Resource("/tables").
		WithActions(
			box.Get(listTables).WithName("listTables"),
			box.Post(createTable).WithName("createTable"),
		)

	v1.Resource("/tables/{tableName}").
		WithActions(
			box.Get(getTable).WithName("getTable"),
			box.ActionPost(addRow).WithName("addRow"),
			box.ActionPost(addCol).WithName("addCol"),
			box.ActionPost(removeRow).WithName("removeRow"),
			box.ActionPost(removeCol).WithName("removeCol"),
			box.ActionPost(setRowKey).WithName("setRowKey"),
			box.ActionPost(setColKey).WithName("setColKey"),
			box.ActionPost(setOperator).WithName("setOperator"),
			box.ActionPost(getCell).WithName("getCell"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(appendRows).WithName("appendRows"),
			box.ActionPost(export).WithName("export"),
			box.ActionPost(render).WithName("render"),
			box.Action(watch).WithName("watch"),
			box.ActionPost(dropTable).WithName("dropTable"),
		)

	return tables
}
