package metrics

const Namespace = "civicadmin"
