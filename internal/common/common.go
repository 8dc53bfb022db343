package common

const ApplicationName = "invoice-service"
