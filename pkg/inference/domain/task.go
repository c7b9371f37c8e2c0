package domain

type Task string

const (
	TaskImageClassification Task = "image-classification"
	TaskTextClassification  Task = "text-classification"
)
