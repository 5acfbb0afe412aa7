package domain

// Department представляет подразделение организации
type Department struct {
	ID        int64  `json:"departmentId" gorm:"column:department_id;primaryKey;autoIncrement"`
	ShortName string `json:"shortName" gorm:"column:short_name;type:varchar(10);not null"`
	Name      string `json:"departmentName" gorm:"column:department_name;type:varchar(100);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника. Подразделение может отсутствовать.
type Employee struct {
	ID           int64  `json:"employeeID" gorm:"column:employee_id;primaryKey;autoIncrement"`
	FirstName    string `json:"firstName" gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string `json:"lastName" gorm:"column:last_name;type:varchar(100);not null"`
	DeptID       *int64 `json:"-" gorm:"column:department_id;index"`

	// belongs-to по employees.department_id. Имя DeptID не должно совпадать
	// с полями Department: иначе GORM выводит has-one по employee_id.
	Department *Department `json:"department" gorm:"foreignKey:DeptID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// SetDepartment привязывает сотрудника к подразделению или отвязывает при nil
func (e *Employee) SetDepartment(dept *Department) {
	e.Department = dept
	if dept == nil {
		e.DeptID = nil
		return
	}
	id := dept.ID
	e.DeptID = &id
}
