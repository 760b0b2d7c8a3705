package exclude
