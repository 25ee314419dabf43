package dto

import (
	classModel "schoolku_backend/internals/features/school/classes/model"
	schoolDTO "schoolku_backend/internals/features/school/schools/dto"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userDTO "schoolku_backend/internals/features/users/user/dto"
)

// SchoolSummary adalah blok ringkasan angka di dashboard
type SchoolSummary struct {
	StudentCount int `json:"student_count"`
	TeacherCount int `json:"teacher_count"`
	ClassCount   int `json:"class_count"`
	SubjectCount int `json:"subject_count"`
	ReportsCount int `json:"reports_count"`
}

// DashboardResponse: sekolah + koleksi relasinya + ringkasan
type DashboardResponse struct {
	School        schoolDTO.SchoolResponse    `json:"school"`
	Owner         *userDTO.UserResponse       `json:"owner,omitempty"`
	Students      []userDTO.UserResponse      `json:"students"`
	Teachers      []userDTO.UserResponse      `json:"teachers"`
	Subjects      []subjectModel.SubjectModel `json:"subjects"`
	Classes       []classModel.ClassModel     `json:"classes"`
	SchoolSummary SchoolSummary               `json:"school_summary"`
}
